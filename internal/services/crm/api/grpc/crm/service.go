// Package crm implements the crm.v1.CrmService gRPC API.
package crm

import (
	"context"
	"errors"
	"strings"

	crmv1 "github.com/kailanyue/crm/api/gen/go/crm/v1"
	"github.com/kailanyue/crm/internal/services/crm/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Runner executes one campaign end to end.
type Runner interface {
	Run(ctx context.Context, campaign domain.Campaign) error
}

// Service maps the three campaign RPCs onto the orchestrator.
type Service struct {
	crmv1.UnimplementedCrmServiceServer
	runner Runner
}

// NewService creates a CrmService backed by the provided campaign runner.
func NewService(runner Runner) *Service {
	return &Service{runner: runner}
}

// Welcome runs a welcome campaign for users who joined within the interval.
func (s *Service) Welcome(ctx context.Context, in *crmv1.WelcomeRequest) (*crmv1.WelcomeResponse, error) {
	err := s.run(ctx, domain.Campaign{
		ID:           in.GetId(),
		Kind:         domain.KindWelcome,
		IntervalDays: in.GetInterval(),
		ContentIDs:   in.GetContentIds(),
	})
	if err != nil {
		return nil, err
	}
	return &crmv1.WelcomeResponse{Id: in.GetId()}, nil
}

// Recall runs a recall campaign for users whose last visit falls within the
// interval.
func (s *Service) Recall(ctx context.Context, in *crmv1.RecallRequest) (*crmv1.RecallResponse, error) {
	err := s.run(ctx, domain.Campaign{
		ID:           in.GetId(),
		Kind:         domain.KindRecall,
		IntervalDays: in.GetLastVisitInterval(),
		ContentIDs:   in.GetContentIds(),
	})
	if err != nil {
		return nil, err
	}
	return &crmv1.RecallResponse{Id: in.GetId()}, nil
}

// Remind runs a remind campaign for users with unfinished contents.
func (s *Service) Remind(ctx context.Context, in *crmv1.RemindRequest) (*crmv1.RemindResponse, error) {
	err := s.run(ctx, domain.Campaign{
		ID:           in.GetId(),
		Kind:         domain.KindRemind,
		IntervalDays: in.GetLastVisitInterval(),
	})
	if err != nil {
		return nil, err
	}
	return &crmv1.RemindResponse{Id: in.GetId()}, nil
}

func (s *Service) run(ctx context.Context, campaign domain.Campaign) error {
	if strings.TrimSpace(campaign.ID) == "" {
		return status.Error(codes.InvalidArgument, "campaign id is required")
	}
	if s.runner == nil {
		return status.Error(codes.Internal, "campaign runner is not configured")
	}

	err := s.runner.Run(ctx, campaign)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUnknownKind):
		return status.Errorf(codes.InvalidArgument, "run campaign: %v", err)
	case errors.Is(err, domain.ErrBackendUnavailable), errors.Is(err, domain.ErrSendFailed):
		return status.Errorf(codes.Internal, "run campaign: %v", err)
	default:
		if _, ok := status.FromError(err); ok {
			return err
		}
		return status.Errorf(codes.Internal, "run campaign: %v", err)
	}
}
