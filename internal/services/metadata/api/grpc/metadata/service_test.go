package metadata

import (
	"context"
	"errors"
	"testing"

	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	"github.com/kailanyue/crm/internal/services/metadata/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeStore struct {
	contents map[uint32]storage.ContentRecord
	getErr   error
	lastIDs  []uint32
}

func (f *fakeStore) PutContent(context.Context, storage.ContentRecord) error { return nil }

func (f *fakeStore) GetContent(_ context.Context, id uint32) (storage.ContentRecord, error) {
	record, ok := f.contents[id]
	if !ok {
		return storage.ContentRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (f *fakeStore) GetContents(_ context.Context, ids []uint32, visit func(storage.ContentRecord) error) error {
	f.lastIDs = ids
	if f.getErr != nil {
		return f.getErr
	}
	for _, id := range ids {
		record, ok := f.contents[id]
		if !ok {
			continue
		}
		if err := visit(record); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStore) Close() error { return nil }

type fakeContentStream struct {
	sent []*metadatav1.Content
}

func (f *fakeContentStream) Send(content *metadatav1.Content) error {
	f.sent = append(f.sent, content)
	return nil
}

func (f *fakeContentStream) Context() context.Context { return context.Background() }

func TestMaterializeStreamsExistingContents(t *testing.T) {
	t.Parallel()

	store := &fakeStore{contents: map[uint32]storage.ContentRecord{
		1: {ID: 1, Name: "First"},
		2: {ID: 2, Name: "Second"},
	}}
	svc := NewService(store)
	stream := &fakeContentStream{}

	err := svc.streamContents(&metadatav1.MaterializeRequest{Ids: []uint32{2, 99, 1}}, stream)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("sent %d contents, want 2", len(stream.sent))
	}
	if stream.sent[0].GetId() != 2 || stream.sent[1].GetId() != 1 {
		t.Fatalf("ids = [%d %d], want request order [2 1]", stream.sent[0].GetId(), stream.sent[1].GetId())
	}
}

func TestMaterializeDedupesRequestedIDs(t *testing.T) {
	t.Parallel()

	store := &fakeStore{contents: map[uint32]storage.ContentRecord{1: {ID: 1}}}
	svc := NewService(store)

	err := svc.streamContents(&metadatav1.MaterializeRequest{Ids: []uint32{1, 1, 1}}, &fakeContentStream{})
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(store.lastIDs) != 1 {
		t.Fatalf("store saw ids %v, want deduped [1]", store.lastIDs)
	}
}

func TestMaterializeEmptyRequestSendsNothing(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeStore{})
	stream := &fakeContentStream{}
	if err := svc.streamContents(&metadatav1.MaterializeRequest{}, stream); err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(stream.sent) != 0 {
		t.Fatalf("sent %d contents, want 0", len(stream.sent))
	}
}

func TestMaterializeStoreErrorIsInternal(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeStore{getErr: errors.New("db gone")})
	err := svc.streamContents(&metadatav1.MaterializeRequest{Ids: []uint32{1}}, &fakeContentStream{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.Internal)
	}
}

func TestMaterializeNilRequestIsInvalid(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeStore{})
	err := svc.streamContents(nil, &fakeContentStream{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}
