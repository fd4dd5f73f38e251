package events

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestBus() *EventBus {
	return NewEventBusWithLogger(zerolog.Nop())
}

func TestEventBus(t *testing.T) {
	bus := newTestBus()

	var received Event
	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = e
	})

	bus.Publish(NewGameStartedEvent("test-game"))

	if assert.NotNil(t, received, "Event should have been received") {
		assert.Equal(t, TypeGameStarted, received.Type())
		assert.Equal(t, "test-game", received.GameID())
		assert.False(t, received.Timestamp().IsZero())
	}
}

func TestEventBusFuncHandlersRunInOrder(t *testing.T) {
	bus := newTestBus()

	var order []int
	id1 := bus.SubscribeFunc(TypeTurnStarted, func(e Event) { order = append(order, 1) })
	id2 := bus.SubscribeFunc(TypeTurnStarted, func(e Event) { order = append(order, 2) })

	bus.Publish(NewTurnStartedEvent("test-game", 1))

	assert.Equal(t, []int{1, 2}, order)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeTurnStarted))
	assert.Equal(t, 0, bus.GetFuncHandlerCount(TypeTurnEnded))
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriberFiltering(t *testing.T) {
	bus := newTestBus()

	all := &TestSubscriber{id: "all"}
	scored := &TestSubscriber{id: "scored", interestedTypes: map[string]bool{TypeCategoryScored: true}}
	bus.Subscribe(all)
	bus.Subscribe(scored)
	assert.Equal(t, 2, bus.GetSubscriberCount())

	bus.Publish(NewTurnStartedEvent("g", 1))
	bus.Publish(NewCategoryScoredEvent("g", 1, "Chance", 17, [5]int{1, 2, 3, 5, 6}))

	assert.Len(t, all.receivedEvents, 2)
	if assert.Len(t, scored.receivedEvents, 1) {
		e, ok := scored.receivedEvents[0].(*CategoryScoredEvent)
		assert.True(t, ok)
		assert.Equal(t, 17, e.Score)
		assert.Equal(t, 1, e.Turn)
	}

	bus.Unsubscribe("all")
	bus.Publish(NewTurnStartedEvent("g", 2))
	assert.Len(t, all.receivedEvents, 2)
	assert.Equal(t, 1, bus.GetSubscriberCount())
}

func TestEventBusRecoversFromPanic(t *testing.T) {
	bus := newTestBus()

	called := false
	bus.SubscribeFunc(TypeGameEnded, func(e Event) { panic("boom") })
	bus.SubscribeFunc(TypeGameEnded, func(e Event) { called = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewGameEndedEvent("g", 13, 200, 0, 0))
	})
	assert.True(t, called, "later handlers still run after a panic")
}
