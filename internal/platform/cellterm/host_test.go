package cellterm

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads until events is closed, failing if that takes too long.
func drain(t *testing.T, events <-chan tcell.Event) int {
	t.Helper()
	n := 0
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return n
			}
			n++
		case <-timeout:
			t.Fatal("event pump did not stop")
			return n
		}
	}
}

func TestPumpEventsStopsWhenScreenFinalized(t *testing.T) {
	queue := []tcell.Event{keyRune('w'), keyRune(' ')}
	poll := func() tcell.Event {
		if len(queue) == 0 {
			return nil
		}
		ev := queue[0]
		queue = queue[1:]
		return ev
	}

	events := make(chan tcell.Event, 10)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(poll, events, done)

	assert.Equal(t, 2, drain(t, events))
}

func TestPumpEventsStopsWhenLoopExits(t *testing.T) {
	polled := make(chan struct{}, 1)
	poll := func() tcell.Event {
		select {
		case polled <- struct{}{}:
		default:
		}
		return keyRune(' ')
	}

	// Unbuffered and never read: the pump blocks on its first send
	events := make(chan tcell.Event)
	done := make(chan struct{})
	go pumpEvents(poll, events, done)

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "pump never polled")
	}
	close(done)

	// Any event that raced past done is drained; then the channel closes
	drain(t, events)
}
