package alert

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBus_PublishFanOut(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	defer bus.Close()

	var mu sync.Mutex
	received := map[string][]Alert{}

	for _, name := range []string{"ui", "telegram"} {
		n := name
		bus.Subscribe(n, SubscriberFunc(func(a Alert) {
			mu.Lock()
			received[n] = append(received[n], a)
			mu.Unlock()
		}), 8)
	}

	bus.Critical("Solvex", "Solvex API Problem", "connection refused")
	bus.Warning("Filos", "Filos: empty response", "no offers returned")

	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, received["ui"], 2)
	assert.Len(t, received["telegram"], 2)
	assert.Equal(t, SeverityCritical, received["ui"][0].Severity)
	assert.Equal(t, "Solvex", received["ui"][0].Provider)
	assert.False(t, received["ui"][0].Timestamp.IsZero())
}

func TestBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	defer bus.Close()

	release := make(chan struct{})
	var fastCount atomic.Int64

	bus.Subscribe("slow", SubscriberFunc(func(Alert) {
		<-release
	}), 1)
	bus.Subscribe("fast", SubscriberFunc(func(Alert) {
		fastCount.Add(1)
	}), 16)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Critical("Solvex", "problem", "detail")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	close(release)
	bus.Close()

	assert.Equal(t, int64(10), fastCount.Load())
	assert.Greater(t, bus.Dropped(), int64(0), "overflowing the slow queue counts drops")
}

func TestBus_PublishAfterClose(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var count atomic.Int64
	bus.Subscribe("ui", SubscriberFunc(func(Alert) { count.Add(1) }), 8)

	bus.Publish(Alert{Title: "before close", Severity: SeverityInfo})
	bus.Close()
	bus.Publish(Alert{Title: "after close", Severity: SeverityInfo})

	assert.Equal(t, int64(1), count.Load())
}

func TestBus_SubscribeAfterClose(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	bus.Close()

	bus.Subscribe("late", SubscriberFunc(func(Alert) {
		t.Error("late subscriber must never be invoked")
	}), 8)
	bus.Publish(Alert{Title: "x"})
}

func TestLogNotifier_Notify(t *testing.T) {
	// Smoke test: must not panic for any severity.
	n := NewLogNotifier(zerolog.Nop())
	n.Notify(Alert{Severity: SeverityInfo})
	n.Notify(Alert{Severity: SeverityWarning})
	n.Notify(Alert{Severity: SeverityCritical, Provider: "Solvex"})
}
