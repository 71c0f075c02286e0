package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var seen []Event
	d.Subscribe(EventMachineStatusChanged, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	event := Event{ID: "ev-1", Type: EventMachineStatusChanged, BranchID: "b-1"}
	require.NoError(t, d.Publish(context.Background(), event))
	require.Len(t, seen, 1)
	assert.Equal(t, "ev-1", seen[0].ID)
}

func TestDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	called := 0
	d.Subscribe(EventEmployeeCreated, func(context.Context, Event) error {
		return errors.New("handler failure")
	})
	d.Subscribe(EventEmployeeCreated, func(context.Context, Event) error {
		called++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventEmployeeCreated}))
	assert.Equal(t, 1, called)
}

func TestDispatcher_UnsubscribedTypeIsNoop(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventEmployeeDeleted}))
}
