package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
)

func sequenceProducer(n int) func(context.Context) (*notificationv1.SendRequest, error) {
	i := 0
	return func(context.Context) (*notificationv1.SendRequest, error) {
		if i >= n {
			return nil, io.EOF
		}
		i++
		return &notificationv1.SendRequest{Campaign: fmt.Sprintf("req-%d", i)}, nil
	}
}

func TestRelayPreservesOrder(t *testing.T) {
	t.Parallel()

	var got []string
	err := relay(context.Background(), 4, sequenceProducer(10), func(req *notificationv1.SendRequest) error {
		got = append(got, req.GetCampaign())
		return nil
	})
	if err != nil {
		t.Fatalf("relay: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("consumed %d requests, want 10", len(got))
	}
	for i, campaign := range got {
		if want := fmt.Sprintf("req-%d", i+1); campaign != want {
			t.Fatalf("request %d = %q, want %q", i, campaign, want)
		}
	}
}

func TestRelayProducerErrorFailsRelay(t *testing.T) {
	t.Parallel()

	boom := errors.New("cohort stream reset")
	calls := 0
	err := relay(context.Background(), 4, func(context.Context) (*notificationv1.SendRequest, error) {
		calls++
		if calls > 2 {
			return nil, boom
		}
		return &notificationv1.SendRequest{}, nil
	}, func(*notificationv1.SendRequest) error { return nil })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want producer error", err)
	}
}

func TestRelayConsumerErrorCancelsProducer(t *testing.T) {
	t.Parallel()

	broken := errors.New("outbound stream broken")
	var sawCancel atomic.Bool
	first := true
	err := relay(context.Background(), 1, func(ctx context.Context) (*notificationv1.SendRequest, error) {
		if first {
			first = false
			return &notificationv1.SendRequest{}, nil
		}
		// A real cohort stream unblocks with the RPC context.
		<-ctx.Done()
		sawCancel.Store(true)
		return nil, ctx.Err()
	}, func(*notificationv1.SendRequest) error { return broken })
	if !errors.Is(err, broken) {
		t.Fatalf("err = %v, want consumer error", err)
	}
	if !sawCancel.Load() {
		t.Fatal("producer never observed cancellation")
	}
}

func TestRelayBoundsInFlightRequests(t *testing.T) {
	t.Parallel()

	const capacity = 2
	var produced atomic.Int32
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- relay(context.Background(), capacity, func(context.Context) (*notificationv1.SendRequest, error) {
			if produced.Add(1) > 50 {
				return nil, io.EOF
			}
			return &notificationv1.SendRequest{}, nil
		}, func(*notificationv1.SendRequest) error {
			<-release
			return nil
		})
	}()

	// With the consumer stalled the producer can run at most one request
	// ahead of the buffer before blocking.
	deadline := time.After(time.Second)
	for produced.Load() < capacity+1 {
		select {
		case <-deadline:
			t.Fatalf("producer stalled early at %d", produced.Load())
		case <-time.After(time.Millisecond):
		}
	}
	time.Sleep(20 * time.Millisecond)
	if got := produced.Load(); got > capacity+2 {
		t.Fatalf("producer ran %d requests ahead with consumer stalled, capacity %d", got, capacity)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("relay: %v", err)
	}
}

func TestRelayZeroCapacityUsesDefault(t *testing.T) {
	t.Parallel()

	consumed := 0
	err := relay(context.Background(), 0, sequenceProducer(3), func(*notificationv1.SendRequest) error {
		consumed++
		return nil
	})
	if err != nil {
		t.Fatalf("relay: %v", err)
	}
	if consumed != 3 {
		t.Fatalf("consumed %d requests, want 3", consumed)
	}
}
