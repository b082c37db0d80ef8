// Package stats implements the stats.v1.UserStatsService gRPC API.
package stats

import (
	"context"

	statsv1 "github.com/kailanyue/crm/api/gen/go/stats/v1"
	"github.com/kailanyue/crm/internal/services/stats/query"
	"github.com/kailanyue/crm/internal/services/stats/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service answers cohort queries with a stream of matching users.
type Service struct {
	statsv1.UnimplementedUserStatsServiceServer
	store storage.Store
}

// NewService creates a UserStatsService backed by the provided store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Query streams every user matching the structured cohort query.
func (s *Service) Query(in *statsv1.QueryRequest, stream statsv1.UserStatsService_QueryServer) error {
	return s.streamQuery(in, stream)
}

// RawQuery streams every user matching an AIP-160 filter expression.
func (s *Service) RawQuery(in *statsv1.RawQueryRequest, stream statsv1.UserStatsService_RawQueryServer) error {
	return s.streamRawQuery(in, stream)
}

func (s *Service) streamQuery(in *statsv1.QueryRequest, stream userSender) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "query request is required")
	}

	cond, err := query.Compile(in)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "compile query: %v", err)
	}
	return s.streamUsers(cond, stream)
}

func (s *Service) streamRawQuery(in *statsv1.RawQueryRequest, stream userSender) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "raw query request is required")
	}

	cond, err := query.ParseFilter(in.GetFilter())
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "parse filter: %v", err)
	}
	return s.streamUsers(cond, stream)
}

// userSender is the part of the response streams both query RPCs share.
type userSender interface {
	Send(*statsv1.User) error
	Context() context.Context
}

func (s *Service) streamUsers(cond query.Condition, stream userSender) error {
	if s.store == nil {
		return status.Error(codes.Internal, "user store is not configured")
	}

	err := s.store.QueryUsers(stream.Context(), cond, func(record storage.UserRecord) error {
		return stream.Send(userToProto(record))
	})
	if err != nil {
		if _, ok := status.FromError(err); ok {
			return err
		}
		return status.Errorf(codes.Internal, "query users: %v", err)
	}
	return nil
}

func userToProto(record storage.UserRecord) *statsv1.User {
	return &statsv1.User{
		Email:                 record.Email,
		Name:                  record.Name,
		ViewedButNotStarted:   record.ViewedButNotStarted,
		StartedButNotFinished: record.StartedButNotFinished,
	}
}
