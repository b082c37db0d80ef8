package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
)

// Orchestrator runs campaigns against the three backend services. One
// orchestrator serves every campaign kind; the differences live in the
// descriptor table.
type Orchestrator struct {
	Stats        StatsClient
	Metadata     MetadataClient
	Notification NotificationClient

	// Sender is the address campaigns are sent from.
	Sender string

	// Clock and Logf are seams for tests; nil means time.Now and log.Printf.
	Clock func() time.Time
	Logf  func(format string, args ...any)

	// RelayCapacity overrides the relay buffer size when positive.
	RelayCapacity int
}

func (o *Orchestrator) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

func (o *Orchestrator) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Run executes one campaign: queries the cohort, joins the content snapshot,
// and relays one send request per user to the notification backend. It
// returns only after the backend acknowledges the whole stream. Per-user send
// failures are logged and skipped; a broken cohort or outbound stream fails
// the whole run.
func (o *Orchestrator) Run(ctx context.Context, campaign Campaign) error {
	if o == nil {
		return errors.New("orchestrator is nil")
	}
	if strings.TrimSpace(campaign.ID) == "" {
		return errors.New("campaign id is required")
	}
	desc, err := DescriptorFor(campaign.Kind)
	if err != nil {
		return err
	}
	if o.Stats == nil || o.Notification == nil {
		return fmt.Errorf("%w: backend clients are not configured", ErrBackendUnavailable)
	}

	snapshot, err := o.contentSnapshot(ctx, desc, campaign)
	if err != nil {
		return err
	}

	users, err := o.Stats.Query(ctx, cohortQuery(desc, campaign.IntervalDays, o.now()))
	if err != nil {
		return fmt.Errorf("%w: query cohort: %v", ErrBackendUnavailable, err)
	}

	stream, err := o.Notification.OpenSend(ctx)
	if err != nil {
		return fmt.Errorf("%w: open send stream: %v", ErrSendFailed, err)
	}

	sent := 0
	relayErr := relay(ctx, o.RelayCapacity,
		func(context.Context) (*notificationv1.SendRequest, error) {
			user, err := users.Recv()
			if err != nil {
				return nil, err
			}
			req := desc.Compose(user, snapshot)
			req.Campaign = desc.Label
			req.Sender = o.Sender
			req.Recipients = []string{user.GetEmail()}
			return req, nil
		},
		func(req *notificationv1.SendRequest) error {
			if err := stream.Send(req); err != nil {
				if errors.Is(err, io.EOF) {
					return errConsumerBroken
				}
				o.logf("campaign %s: send to %v failed: %v", campaign.ID, req.GetRecipients(), err)
				return nil
			}
			sent++
			return nil
		})

	ack, closeErr := stream.CloseAndRecv()

	switch {
	case relayErr == nil:
	case errors.Is(relayErr, errConsumerBroken):
		if closeErr != nil {
			return fmt.Errorf("%w: %v", ErrSendFailed, closeErr)
		}
		return fmt.Errorf("%w: outbound stream closed early", ErrSendFailed)
	default:
		return fmt.Errorf("%w: cohort stream: %v", ErrBackendUnavailable, relayErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close send stream: %v", ErrSendFailed, closeErr)
	}

	o.logf("campaign %s (%s): sent %d requests, receipt %s accepted %d",
		campaign.ID, desc.Label, sent, ack.GetReceiptId(), ack.GetAccepted())
	return nil
}

func (o *Orchestrator) contentSnapshot(ctx context.Context, desc Descriptor, campaign Campaign) ([]*metadatav1.Content, error) {
	if !desc.NeedsContent {
		return nil, nil
	}
	return joinContents(ctx, o.Metadata, campaign.ContentIDs)
}
