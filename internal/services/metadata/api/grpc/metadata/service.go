// Package metadata implements the metadata.v1.MetadataService gRPC API.
package metadata

import (
	"context"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	"github.com/kailanyue/crm/internal/services/metadata/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Service resolves content ids to full content records.
type Service struct {
	metadatav1.UnimplementedMetadataServiceServer
	store storage.Store
}

// NewService creates a MetadataService backed by the provided store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// contentSender is the part of the Materialize response stream the
// implementation needs.
type contentSender interface {
	Send(*metadatav1.Content) error
	Context() context.Context
}

// Materialize streams the requested contents that exist. Duplicate ids are
// resolved once, and unknown ids are skipped rather than failing the stream.
func (s *Service) Materialize(in *metadatav1.MaterializeRequest, stream metadatav1.MetadataService_MaterializeServer) error {
	return s.streamContents(in, stream)
}

func (s *Service) streamContents(in *metadatav1.MaterializeRequest, stream contentSender) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "materialize request is required")
	}
	if s.store == nil {
		return status.Error(codes.Internal, "content store is not configured")
	}

	err := s.store.GetContents(stream.Context(), dedupeIDs(in.GetIds()), func(record storage.ContentRecord) error {
		return stream.Send(contentToProto(record))
	})
	if err != nil {
		if _, ok := status.FromError(err); ok {
			return err
		}
		return status.Errorf(codes.Internal, "materialize contents: %v", err)
	}
	return nil
}

func dedupeIDs(ids []uint32) []uint32 {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uint32]struct{}, len(ids))
	deduped := make([]uint32, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}
	return deduped
}

func contentToProto(record storage.ContentRecord) *metadatav1.Content {
	return &metadatav1.Content{
		Id:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Authors:     record.Authors,
		Url:         record.URL,
		Image:       record.Image,
		Views:       record.Views,
		Likes:       record.Likes,
		PublishedAt: timestamppb.New(record.PublishedAt),
	}
}
