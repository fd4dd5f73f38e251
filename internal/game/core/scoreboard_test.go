package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboardRecord(t *testing.T) {
	board := NewScoreboard()

	score, err := board.Record(FullHouse, [HandSize]int{2, 2, 2, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 25, score)
	assert.True(t, board.IsFilled(FullHouse))
	assert.False(t, board.IsFilled(Yahtzee))
	assert.Equal(t, 1, board.FilledCount())
}

func TestScoreboardRecordIsIdempotent(t *testing.T) {
	board := NewScoreboard()

	_, err := board.Record(Yahtzee, [HandSize]int{6, 6, 6, 6, 6})
	require.NoError(t, err)

	score, err := board.Record(Yahtzee, [HandSize]int{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrCategoryFilled)
	assert.Equal(t, 50, score, "second record reports the stored score")

	stored, filled := board.ScoreOf(Yahtzee)
	assert.True(t, filled)
	assert.Equal(t, 50, stored)
	assert.Equal(t, 1, board.FilledCount())
}

func TestScoreboardRecordInvalidCategory(t *testing.T) {
	board := NewScoreboard()

	_, err := board.Record(Category(-1), [HandSize]int{1, 1, 1, 1, 1})
	assert.True(t, errors.Is(err, ErrInvalidCategory))
	assert.Equal(t, 0, board.FilledCount())
	assert.False(t, board.IsFilled(Category(-1)))
}

func TestScoreboardBonus(t *testing.T) {
	tests := []struct {
		name      string
		onesHand  [HandSize]int
		wantUpper int
		wantBonus int
	}{
		{"upper at threshold", [HandSize]int{1, 2, 2, 2, 2}, 63, 35},
		{"upper one short", [HandSize]int{2, 2, 2, 2, 2}, 62, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewScoreboard()
			hands := map[Category][HandSize]int{
				Sixes:  {6, 6, 6, 6, 2},
				Fives:  {5, 5, 5, 5, 2},
				Fours:  {4, 4, 4, 2, 2},
				Threes: {3, 3, 2, 2, 2},
				Ones:   tt.onesHand,
			}
			for c, values := range hands {
				_, err := board.Record(c, values)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantUpper, board.UpperTotal())
			assert.Equal(t, tt.wantBonus, board.Bonus())
			assert.Equal(t, tt.wantUpper+tt.wantBonus, board.GrandTotal())
		})
	}
}

func TestScoreboardFullGame(t *testing.T) {
	board := NewScoreboard()
	turns := []struct {
		category Category
		values   [HandSize]int
		want     int
	}{
		{Ones, [HandSize]int{1, 1, 1, 1, 1}, 5},
		{Twos, [HandSize]int{2, 2, 2, 2, 2}, 10},
		{Threes, [HandSize]int{3, 3, 3, 3, 3}, 15},
		{Fours, [HandSize]int{4, 4, 4, 4, 4}, 20},
		{Fives, [HandSize]int{5, 5, 5, 5, 2}, 20},
		{Sixes, [HandSize]int{6, 6, 6, 6, 1}, 24},
		{ThreeOfKind, [HandSize]int{3, 3, 3, 2, 1}, 12},
		{FourOfKind, [HandSize]int{6, 6, 6, 6, 5}, 29},
		{FullHouse, [HandSize]int{2, 2, 2, 3, 3}, 25},
		{SmallStraight, [HandSize]int{1, 2, 3, 4, 6}, 30},
		{LargeStraight, [HandSize]int{2, 3, 4, 5, 6}, 40},
		{Chance, [HandSize]int{1, 2, 3, 4, 5}, 15},
		{Yahtzee, [HandSize]int{6, 6, 6, 6, 6}, 50},
	}

	for i, turn := range turns {
		assert.False(t, board.IsComplete(), "board complete before record %d", i+1)
		score, err := board.Record(turn.category, turn.values)
		require.NoError(t, err)
		assert.Equal(t, turn.want, score, "score for %s", turn.category)
	}

	assert.True(t, board.IsComplete())
	assert.Empty(t, board.Available())
	assert.Equal(t, 94, board.UpperTotal())
	assert.Equal(t, 201, board.LowerTotal())
	assert.Equal(t, 35, board.Bonus())
	assert.Equal(t, 330, board.GrandTotal())
}

func TestScoreboardRows(t *testing.T) {
	board := NewScoreboard()
	_, err := board.Record(Chance, [HandSize]int{6, 5, 4, 3, 2})
	require.NoError(t, err)

	rows := board.Rows()
	require.Len(t, rows, NumCategories)
	for _, row := range rows {
		if row.Category == Chance {
			assert.True(t, row.Filled)
			assert.Equal(t, 20, row.Score)
			continue
		}
		assert.False(t, row.Filled, "%s should be unplayed", row.Category)
	}

	// Mutating the snapshot must not touch the board.
	rows[Chance].Score = 0
	score, _ := board.ScoreOf(Chance)
	assert.Equal(t, 20, score)
}
