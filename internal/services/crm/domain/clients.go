package domain

import (
	"context"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
	statsv1 "github.com/kailanyue/crm/api/gen/go/stats/v1"
)

// UserStream receives cohort users one at a time. Recv returns io.EOF when
// the cohort is exhausted; any other error aborts the campaign.
type UserStream interface {
	Recv() (*statsv1.User, error)
}

// ContentStream receives materialized contents one at a time.
type ContentStream interface {
	Recv() (*metadatav1.Content, error)
}

// SendStream is the outbound notification stream for one campaign run.
type SendStream interface {
	Send(*notificationv1.SendRequest) error
	CloseAndRecv() (*notificationv1.SendResponse, error)
}

// StatsClient opens cohort query streams against the user statistics backend.
type StatsClient interface {
	Query(ctx context.Context, in *statsv1.QueryRequest) (UserStream, error)
}

// MetadataClient resolves content ids against the metadata backend.
type MetadataClient interface {
	Materialize(ctx context.Context, in *metadatav1.MaterializeRequest) (ContentStream, error)
}

// NotificationClient opens send streams against the notification backend.
type NotificationClient interface {
	OpenSend(ctx context.Context) (SendStream, error)
}
