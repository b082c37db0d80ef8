// Package notification implements the notification.v1.NotificationService gRPC API.
package notification

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
	"github.com/kailanyue/crm/internal/services/notification/dispatch"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Service ingests campaign send streams and queues them for delivery.
type Service struct {
	notificationv1.UnimplementedNotificationServiceServer
	dispatcher *dispatch.Dispatcher
	clock      func() time.Time
	newID      func() string
}

// NewService creates a NotificationService backed by the provided dispatcher.
func NewService(dispatcher *dispatch.Dispatcher) *Service {
	return &Service{
		dispatcher: dispatcher,
		clock:      time.Now,
		newID:      uuid.NewString,
	}
}

// sendReceiver is the part of the Send client stream the handler needs.
type sendReceiver interface {
	Recv() (*notificationv1.SendRequest, error)
	SendAndClose(*notificationv1.SendResponse) error
	Context() context.Context
}

// Send consumes the client stream, queues every valid request for delivery,
// and acknowledges the whole stream once with a receipt. The ack accepts the
// stream; it is not a per-message delivery confirmation.
func (s *Service) Send(stream notificationv1.NotificationService_SendServer) error {
	return s.consume(stream)
}

func (s *Service) consume(stream sendReceiver) error {
	if s.dispatcher == nil {
		return status.Error(codes.Internal, "dispatcher is not configured")
	}

	var accepted uint32
	for {
		in, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return status.Errorf(codes.Internal, "receive send request: %v", err)
		}

		msg, err := s.toMessage(in)
		if err != nil {
			return status.Errorf(codes.InvalidArgument, "send request: %v", err)
		}
		if err := s.dispatcher.Enqueue(stream.Context(), msg); err != nil {
			return status.Errorf(codes.Unavailable, "queue notification: %v", err)
		}
		accepted++
	}

	return stream.SendAndClose(&notificationv1.SendResponse{
		ReceiptId: s.newID(),
		Accepted:  accepted,
		Timestamp: timestamppb.New(s.clock()),
	})
}

func (s *Service) toMessage(in *notificationv1.SendRequest) (dispatch.Message, error) {
	if in == nil {
		return dispatch.Message{}, errors.New("request is required")
	}

	msg := dispatch.Message{
		ID:         s.newID(),
		Campaign:   in.GetCampaign(),
		Sender:     in.GetSender(),
		Recipients: in.GetRecipients(),
		EnqueuedAt: s.clock(),
	}
	switch payload := in.GetPayload().(type) {
	case *notificationv1.SendRequest_Contents:
		msg.Contents = payload.Contents.GetContents()
		if msg.Contents == nil {
			// An empty content snapshot is still a present payload.
			msg.Contents = []*metadatav1.Content{}
		}
	case *notificationv1.SendRequest_Remind:
		msg.Remind = &dispatch.RemindSummary{
			ViewedButNotStarted:   payload.Remind.GetViewedButNotStarted(),
			StartedButNotFinished: payload.Remind.GetStartedButNotFinished(),
		}
	}
	if err := msg.Validate(); err != nil {
		return dispatch.Message{}, err
	}
	return msg, nil
}
