package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	bus := NewBus()
	got := make(chan interface{}, 1)

	bus.Subscribe(EventWagerSettled, func(payload interface{}) {
		got <- payload
	})

	bus.Publish(EventWagerSettled, "payload")

	select {
	case p := <-got:
		require.Equal(t, "payload", p)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestPublishUnknownTopicIsSilent(t *testing.T) {
	bus := NewBus()
	bus.Publish("nobody.listens", nil)
}
