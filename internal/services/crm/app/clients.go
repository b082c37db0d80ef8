package server

import (
	"context"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
	statsv1 "github.com/kailanyue/crm/api/gen/go/stats/v1"
	"github.com/kailanyue/crm/internal/services/crm/domain"
)

// The generated stream clients already satisfy the domain stream interfaces;
// these adapters only narrow the client surface the orchestrator sees.

type statsBackend struct {
	client statsv1.UserStatsServiceClient
}

func (b statsBackend) Query(ctx context.Context, in *statsv1.QueryRequest) (domain.UserStream, error) {
	return b.client.Query(ctx, in)
}

type metadataBackend struct {
	client metadatav1.MetadataServiceClient
}

func (b metadataBackend) Materialize(ctx context.Context, in *metadatav1.MaterializeRequest) (domain.ContentStream, error) {
	return b.client.Materialize(ctx, in)
}

type notificationBackend struct {
	client notificationv1.NotificationServiceClient
}

func (b notificationBackend) OpenSend(ctx context.Context) (domain.SendStream, error) {
	return b.client.Send(ctx)
}
