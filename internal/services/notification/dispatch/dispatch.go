// Package dispatch queues accepted notifications for background delivery.
package dispatch

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
)

// DefaultCapacity bounds the delivery queue when no capacity is configured.
const DefaultCapacity = 1024

// ErrClosed reports an enqueue against a dispatcher that is shutting down.
var ErrClosed = errors.New("dispatcher is closed")

// RemindSummary carries a recipient's own pending content id lists.
type RemindSummary struct {
	ViewedButNotStarted   []uint32
	StartedButNotFinished []uint32
}

// Message is one accepted notification awaiting delivery.
type Message struct {
	ID         string
	Campaign   string
	Sender     string
	Recipients []string
	Contents   []*metadatav1.Content
	Remind     *RemindSummary
	EnqueuedAt time.Time
}

// DeliverFunc performs the actual delivery of one message.
type DeliverFunc func(Message)

// Dispatcher hands accepted messages to a background delivery worker through
// a bounded queue. Close drains the queue before returning.
type Dispatcher struct {
	queue   chan Message
	deliver DeliverFunc
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// New creates a dispatcher with the provided queue capacity and delivery
// function. A zero capacity falls back to DefaultCapacity, and a nil deliver
// function falls back to logging each delivery.
func New(capacity int, deliver DeliverFunc) *Dispatcher {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if deliver == nil {
		deliver = logDelivery
	}

	d := &Dispatcher{
		queue:   make(chan Message, capacity),
		deliver: deliver,
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.queue {
		d.deliver(msg)
	}
}

// Enqueue queues one message for delivery, blocking while the queue is full
// until space frees up or the context ends.
func (d *Dispatcher) Enqueue(ctx context.Context, msg Message) error {
	if d == nil {
		return ErrClosed
	}

	// The read lock spans the channel send so Close cannot close the queue
	// out from under an in-flight enqueue.
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}

	select {
	case d.queue <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting messages and waits for queued deliveries to finish.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

func logDelivery(msg Message) {
	payload := "remind"
	if msg.Remind == nil {
		payload = "contents"
	}
	log.Printf("deliver %s campaign=%s sender=%s recipients=%d payload=%s",
		msg.ID, msg.Campaign, msg.Sender, len(msg.Recipients), payload)
}

// Validate reports whether the message is deliverable.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Campaign) == "" {
		return errors.New("campaign is required")
	}
	if strings.TrimSpace(m.Sender) == "" {
		return errors.New("sender is required")
	}
	if len(m.Recipients) == 0 {
		return errors.New("at least one recipient is required")
	}
	if m.Remind == nil && m.Contents == nil {
		return errors.New("payload is required")
	}
	return nil
}
