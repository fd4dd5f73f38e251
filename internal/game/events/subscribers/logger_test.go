package subscribers_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/yahtzee/internal/game/events"
	"github.com/mitchelldurbincs/yahtzee/internal/game/events/subscribers"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestLoggerSubscriber(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("test-logger", zerolog.Nop(), zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn("any.event.type"))

	logSub.SetEventFilter([]string{events.TypeCategoryScored})
	assert.True(t, logSub.InterestedIn(events.TypeCategoryScored))
	assert.False(t, logSub.InterestedIn(events.TypeDiceRolled))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeDiceRolled))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	tests := []struct {
		name  string
		event events.Event
		check func(t *testing.T, line map[string]interface{})
	}{
		{
			name:  "dice rolled",
			event: events.NewDiceRolledEvent("g1", 2, 3, [5]int{1, 2, 3, 4, 5}, []int{1, 2}),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, float64(2), line["turn"])
				assert.Equal(t, float64(3), line["roll"])
				assert.Len(t, line["values"], 5)
				assert.Len(t, line["kept"], 2)
			},
		},
		{
			name:  "category scored",
			event: events.NewCategoryScoredEvent("g1", 4, "Full House", 25, [5]int{2, 2, 2, 3, 3}),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, "Full House", line["category"])
				assert.Equal(t, float64(25), line["score"])
			},
		},
		{
			name:  "game ended",
			event: events.NewGameEndedEvent("g1", 13, 250, 35, 0),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, float64(250), line["final_score"])
				assert.Equal(t, float64(35), line["bonus"])
			},
		},
		{
			name:  "state transition",
			event: events.NewStateTransitionEvent("g1", "Scoring", "Complete", "board full"),
			check: func(t *testing.T, line map[string]interface{}) {
				assert.Equal(t, "Scoring", line["from_phase"])
				assert.Equal(t, "Complete", line["to_phase"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)

			logSub.HandleEvent(tt.event)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "Game event", lines[0]["message"])
			assert.Equal(t, "info", lines[0]["level"])
			assert.Equal(t, "g1", lines[0]["game_id"])
			assert.Equal(t, tt.event.Type(), lines[0]["event_type"])
			tt.check(t, lines[0])
		})
	}
}

func TestLoggerSubscriberDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.DebugLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewTurnStartedEvent("g2", 5))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
	data, ok := lines[0]["event_data"].(map[string]interface{})
	require.True(t, ok, "dev mode attaches the raw event")
	assert.Equal(t, "turn.started", data["type"])
	assert.Equal(t, float64(5), data["turn"])
}
