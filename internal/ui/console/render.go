package console

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mitchelldurbincs/yahtzee/internal/game/core"
)

const notPlayed = "Not Played"

// RenderDice writes one line per die.
func RenderDice(w io.Writer, values [core.HandSize]int) error {
	var sb strings.Builder
	for i, v := range values {
		fmt.Fprintf(&sb, "Dice %d: %d\n", i+1, v)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderBoard writes all thirteen rows followed by the section totals.
func RenderBoard(w io.Writer, board *core.Scoreboard) error {
	var sb strings.Builder
	for _, row := range board.Rows() {
		value := notPlayed
		if row.Filled {
			value = fmt.Sprintf("%d", row.Score)
		}
		fmt.Fprintf(&sb, "Row %d (%s): %s\n", int(row.Category), row.Category, value)
	}
	fmt.Fprintf(&sb, "Upper: %d  Bonus: %d  Lower: %d\n", board.UpperTotal(), board.Bonus(), board.LowerTotal())
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderPreview lists the open rows and what the current dice would score.
func RenderPreview(w io.Writer, preview map[core.Category]int) error {
	if len(preview) == 0 {
		return nil
	}
	cats := make([]core.Category, 0, len(preview))
	for c := range preview {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	var sb strings.Builder
	sb.WriteString("Open rows:\n")
	for _, c := range cats {
		fmt.Fprintf(&sb, "  %2d %-16s %d\n", int(c), c.String()+":", preview[c])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
