package domain

import (
	"context"
	"errors"
	"io"

	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
)

// defaultRelayCapacity bounds the in-flight send requests between the cohort
// walk and the outbound notification stream. When the buffer is full the
// producer blocks, so fast cohort streams never outrun a slow consumer.
const defaultRelayCapacity = 1024

// errConsumerBroken signals that the outbound stream is dead and the producer
// should stop. It never escapes the relay.
var errConsumerBroken = errors.New("relay consumer broken")

// relay pumps send requests from produce to consume through a bounded FIFO
// buffer. produce returns io.EOF when the cohort is exhausted; any other
// producer error cancels the relay and fails it. A consume error cancels the
// producer cooperatively and fails the relay with that error.
func relay(ctx context.Context, capacity int,
	produce func(context.Context) (*notificationv1.SendRequest, error),
	consume func(*notificationv1.SendRequest) error) error {
	if capacity <= 0 {
		capacity = defaultRelayCapacity
	}

	relayCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	requests := make(chan *notificationv1.SendRequest, capacity)
	produceErr := make(chan error, 1)
	go func() {
		defer close(requests)
		produceErr <- runProducer(relayCtx, requests, produce)
	}()

	var consumeErr error
	for req := range requests {
		if consumeErr != nil {
			continue
		}
		if err := consume(req); err != nil {
			consumeErr = err
			cancel()
		}
	}

	if consumeErr != nil {
		return consumeErr
	}
	if err := <-produceErr; err != nil {
		return err
	}
	return nil
}

func runProducer(ctx context.Context, requests chan<- *notificationv1.SendRequest,
	produce func(context.Context) (*notificationv1.SendRequest, error)) error {
	for {
		req, err := produce(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		select {
		case requests <- req:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
