// Package alert provides the fire-and-forget event bus used to surface
// degraded or failed suppliers without coupling the search path to any
// delivery channel. Publication never blocks the publisher: each subscriber
// consumes from its own bounded queue, and alerts that do not fit are
// dropped and counted.
package alert

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Severity classifies an alert.
type Severity string

// Alert severities.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is one published event.
type Alert struct {
	// Title is the short user-facing headline
	Title string `json:"title"`

	// Message is the user-facing detail text
	Message string `json:"message"`

	// Severity classifies the alert
	Severity Severity `json:"severity"`

	// Provider names the supplier the alert concerns, when applicable
	Provider string `json:"provider,omitempty"`

	// Timestamp is when the alert was published
	Timestamp time.Time `json:"timestamp"`
}

// Subscriber receives alerts. Notify may block; the bus isolates each
// subscriber behind its own queue so a slow one never stalls the others
// or the publisher.
type Subscriber interface {
	Notify(alert Alert)
}

// SubscriberFunc adapts a plain function to the Subscriber interface.
type SubscriberFunc func(alert Alert)

// Notify implements Subscriber.
func (f SubscriberFunc) Notify(alert Alert) { f(alert) }

// DefaultQueueSize bounds each subscriber's pending alerts.
const DefaultQueueSize = 64

type subscription struct {
	name  string
	queue chan Alert
	done  chan struct{}
}

// Bus fans published alerts out to all subscribers.
type Bus struct {
	mu      sync.RWMutex
	subs    []*subscription
	dropped atomic.Int64
	closed  bool
	log     zerolog.Logger
}

// NewBus creates an alert bus.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{log: log}
}

// Subscribe registers a subscriber under a name used in drop logs.
// A dedicated goroutine drains the subscriber's queue; queueSize <= 0
// falls back to DefaultQueueSize.
func (b *Bus) Subscribe(name string, sub Subscriber, queueSize int) {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	s := &subscription{
		name:  name,
		queue: make(chan Alert, queueSize),
		done:  make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.subs = append(b.subs, s)
	b.mu.Unlock()

	go func() {
		defer close(s.done)
		for alert := range s.queue {
			sub.Notify(alert)
		}
	}()
}

// Publish delivers the alert to every subscriber queue without blocking.
// Alerts that do not fit a full queue are dropped and counted, never
// stalling the search path.
func (b *Bus) Publish(alert Alert) {
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	for _, s := range b.subs {
		select {
		case s.queue <- alert:
		default:
			b.dropped.Add(1)
			b.log.Warn().
				Str("subscriber", s.name).
				Str("title", alert.Title).
				Msg("Alert dropped, subscriber queue full")
		}
	}
}

// Critical publishes a critical alert about one supplier.
func (b *Bus) Critical(provider, title, message string) {
	b.Publish(Alert{
		Title:    title,
		Message:  message,
		Severity: SeverityCritical,
		Provider: provider,
	})
}

// Warning publishes a warning alert about one supplier.
func (b *Bus) Warning(provider, title, message string) {
	b.Publish(Alert{
		Title:    title,
		Message:  message,
		Severity: SeverityWarning,
		Provider: provider,
	})
}

// Dropped returns the number of alerts lost to full queues since start.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Close stops accepting alerts and waits for subscriber queues to drain.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.mu.Unlock()

	for _, s := range subs {
		close(s.queue)
		<-s.done
	}
}
