package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishRunsEveryHandler(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventTransitionDenied, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.RequestID)
		return errors.New("sink down")
	})
	d.Subscribe(EventTransitionDenied, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.RequestID)
		return nil
	})
	d.Subscribe(EventTransitionApproved, func(context.Context, Event) error {
		calls = append(calls, "approved")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTransitionDenied, RequestID: "15"})
	require.ErrorContains(t, err, "sink down")
	require.Equal(t, []string{"first:15", "second:15"}, calls)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventFeedbackChecked}))
}
