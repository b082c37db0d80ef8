package notification

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
	"github.com/kailanyue/crm/internal/services/notification/dispatch"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeSendStream struct {
	requests []*notificationv1.SendRequest
	recvErr  error
	next     int
	resp     *notificationv1.SendResponse
}

func (f *fakeSendStream) Recv() (*notificationv1.SendRequest, error) {
	if f.next >= len(f.requests) {
		if f.recvErr != nil {
			return nil, f.recvErr
		}
		return nil, io.EOF
	}
	in := f.requests[f.next]
	f.next++
	return in, nil
}

func (f *fakeSendStream) SendAndClose(resp *notificationv1.SendResponse) error {
	f.resp = resp
	return nil
}

func (f *fakeSendStream) Context() context.Context { return context.Background() }

func contentRequest(recipient string) *notificationv1.SendRequest {
	return &notificationv1.SendRequest{
		Campaign:   "Welcome",
		Sender:     "crm@example.com",
		Recipients: []string{recipient},
		Payload: &notificationv1.SendRequest_Contents{
			Contents: &notificationv1.ContentPayload{
				Contents: []*metadatav1.Content{{Id: 1, Name: "First"}},
			},
		},
	}
}

func newRecordingService() (*Service, *[]dispatch.Message, *dispatch.Dispatcher) {
	var (
		mu       sync.Mutex
		messages []dispatch.Message
	)
	dispatcher := dispatch.New(16, func(msg dispatch.Message) {
		mu.Lock()
		defer mu.Unlock()
		messages = append(messages, msg)
	})
	svc := NewService(dispatcher)
	svc.clock = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, &messages, dispatcher
}

func TestSendAcceptsStreamAndAcks(t *testing.T) {
	t.Parallel()

	svc, messages, dispatcher := newRecordingService()
	stream := &fakeSendStream{requests: []*notificationv1.SendRequest{
		contentRequest("a@example.com"),
		contentRequest("b@example.com"),
	}}

	if err := svc.consume(stream); err != nil {
		t.Fatalf("send: %v", err)
	}
	dispatcher.Close()

	if stream.resp == nil {
		t.Fatal("no ack sent")
	}
	if stream.resp.GetAccepted() != 2 {
		t.Fatalf("accepted = %d, want 2", stream.resp.GetAccepted())
	}
	if stream.resp.GetReceiptId() == "" {
		t.Fatal("receipt id is empty")
	}
	if got := stream.resp.GetTimestamp().AsTime(); !got.Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("timestamp = %v", got)
	}
	if len(*messages) != 2 {
		t.Fatalf("delivered %d messages, want 2", len(*messages))
	}
	if (*messages)[0].ID == (*messages)[1].ID {
		t.Fatal("message ids are not unique")
	}
}

func TestSendEmptyStreamAcksZero(t *testing.T) {
	t.Parallel()

	svc, _, dispatcher := newRecordingService()
	defer dispatcher.Close()
	stream := &fakeSendStream{}

	if err := svc.consume(stream); err != nil {
		t.Fatalf("send: %v", err)
	}
	if stream.resp.GetAccepted() != 0 {
		t.Fatalf("accepted = %d, want 0", stream.resp.GetAccepted())
	}
}

func TestSendRejectsInvalidRequest(t *testing.T) {
	t.Parallel()

	svc, _, dispatcher := newRecordingService()
	defer dispatcher.Close()
	invalid := contentRequest("a@example.com")
	invalid.Sender = ""
	stream := &fakeSendStream{requests: []*notificationv1.SendRequest{invalid}}

	err := svc.consume(stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
	if stream.resp != nil {
		t.Fatal("ack sent for failed stream")
	}
}

func TestSendRemindPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	svc, messages, dispatcher := newRecordingService()
	stream := &fakeSendStream{requests: []*notificationv1.SendRequest{{
		Campaign:   "Remind",
		Sender:     "crm@example.com",
		Recipients: []string{"a@example.com"},
		Payload: &notificationv1.SendRequest_Remind{
			Remind: &notificationv1.RemindPayload{
				ViewedButNotStarted:   []uint32{1, 2},
				StartedButNotFinished: []uint32{3},
			},
		},
	}}}

	if err := svc.consume(stream); err != nil {
		t.Fatalf("send: %v", err)
	}
	dispatcher.Close()

	if len(*messages) != 1 {
		t.Fatalf("delivered %d messages, want 1", len(*messages))
	}
	remind := (*messages)[0].Remind
	if remind == nil || len(remind.ViewedButNotStarted) != 2 || len(remind.StartedButNotFinished) != 1 {
		t.Fatalf("remind payload = %+v", remind)
	}
}

func TestSendRecvErrorIsInternal(t *testing.T) {
	t.Parallel()

	svc, _, dispatcher := newRecordingService()
	defer dispatcher.Close()
	stream := &fakeSendStream{recvErr: errors.New("connection reset")}

	err := svc.consume(stream)
	if status.Code(err) != codes.Internal {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.Internal)
	}
}

func TestSendClosedDispatcherIsUnavailable(t *testing.T) {
	t.Parallel()

	svc, _, dispatcher := newRecordingService()
	dispatcher.Close()
	stream := &fakeSendStream{requests: []*notificationv1.SendRequest{contentRequest("a@example.com")}}

	err := svc.consume(stream)
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.Unavailable)
	}
}
