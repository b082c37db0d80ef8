package domain

import (
	"context"
	"errors"
	"fmt"
	"io"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
)

// joinContents resolves the campaign's content ids into one snapshot shared
// read-only by every fan-out branch. The backend skips unknown ids, so the
// snapshot is the subset that exists. Ids are resolved once per campaign run,
// never per user.
func joinContents(ctx context.Context, client MetadataClient, ids []uint32) ([]*metadatav1.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if client == nil {
		return nil, fmt.Errorf("%w: metadata client is not configured", ErrBackendUnavailable)
	}

	stream, err := client.Materialize(ctx, &metadatav1.MaterializeRequest{Ids: ids})
	if err != nil {
		return nil, fmt.Errorf("%w: materialize contents: %v", ErrBackendUnavailable, err)
	}

	var contents []*metadatav1.Content
	for {
		content, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return contents, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: receive content: %v", ErrBackendUnavailable, err)
		}
		contents = append(contents, content)
	}
}
