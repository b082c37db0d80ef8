// Package domain orchestrates engagement campaigns: it queries a user cohort,
// joins content metadata, and fans the resulting send requests out to the
// notification backend through a bounded relay.
package domain

import (
	"errors"
	"time"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
	statsv1 "github.com/kailanyue/crm/api/gen/go/stats/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Domain errors the API layer maps onto gRPC status codes.
var (
	// ErrBackendUnavailable reports a failed cohort query or content join.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrSendFailed reports a broken or rejected notification stream.
	ErrSendFailed = errors.New("notification send failed")
	// ErrUnknownKind reports a campaign kind without a descriptor.
	ErrUnknownKind = errors.New("unknown campaign kind")
)

// Kind identifies one of the supported campaign kinds.
type Kind int

const (
	// KindWelcome targets users who joined within the interval.
	KindWelcome Kind = iota
	// KindRecall targets users whose last visit falls within the interval.
	KindRecall
	// KindRemind targets users who watched recently and still have
	// unfinished contents.
	KindRemind
)

// Campaign is one campaign invocation.
type Campaign struct {
	ID           string
	Kind         Kind
	IntervalDays uint32
	ContentIDs   []uint32
}

// Descriptor captures what distinguishes one campaign kind from another. The
// orchestrator is otherwise identical across kinds.
type Descriptor struct {
	// Label names the campaign in outgoing send requests.
	Label string
	// TimeField is the user statistics column the interval constrains.
	TimeField string
	// NeedsContent marks kinds whose payload is a shared content snapshot.
	NeedsContent bool
	// Compose builds the payload-bearing send request for one user.
	Compose func(user *statsv1.User, contents []*metadatav1.Content) *notificationv1.SendRequest
}

var descriptors = map[Kind]Descriptor{
	KindWelcome: {
		Label:        "Welcome",
		TimeField:    "created_at",
		NeedsContent: true,
		Compose:      composeContents,
	},
	KindRecall: {
		Label:        "Recall",
		TimeField:    "last_visited_at",
		NeedsContent: true,
		Compose:      composeContents,
	},
	KindRemind: {
		Label:     "Remind",
		TimeField: "last_watched_at",
		Compose:   composeRemind,
	},
}

// DescriptorFor returns the descriptor for a campaign kind.
func DescriptorFor(kind Kind) (Descriptor, error) {
	desc, ok := descriptors[kind]
	if !ok {
		return Descriptor{}, ErrUnknownKind
	}
	return desc, nil
}

func composeContents(_ *statsv1.User, contents []*metadatav1.Content) *notificationv1.SendRequest {
	return &notificationv1.SendRequest{
		Payload: &notificationv1.SendRequest_Contents{
			Contents: &notificationv1.ContentPayload{Contents: contents},
		},
	}
}

func composeRemind(user *statsv1.User, _ []*metadatav1.Content) *notificationv1.SendRequest {
	return &notificationv1.SendRequest{
		Payload: &notificationv1.SendRequest_Remind{
			Remind: &notificationv1.RemindPayload{
				ViewedButNotStarted:   user.GetViewedButNotStarted(),
				StartedButNotFinished: user.GetStartedButNotFinished(),
			},
		},
	}
}

// cohortQuery constrains the descriptor's time field to the campaign window:
// from interval days back up to a day ahead, so clock skew between services
// never drops users created moments ago.
func cohortQuery(desc Descriptor, intervalDays uint32, now time.Time) *statsv1.QueryRequest {
	lower := now.AddDate(0, 0, -int(intervalDays))
	upper := now.Add(24 * time.Hour)
	return &statsv1.QueryRequest{
		Timestamps: map[string]*statsv1.TimeQuery{
			desc.TimeField: {
				Lower: timestamppb.New(lower),
				Upper: timestamppb.New(upper),
			},
		},
	}
}
