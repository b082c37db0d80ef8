package stats

import (
	"context"
	"errors"
	"testing"

	statsv1 "github.com/kailanyue/crm/api/gen/go/stats/v1"
	"github.com/kailanyue/crm/internal/services/stats/query"
	"github.com/kailanyue/crm/internal/services/stats/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeStore struct {
	users    []storage.UserRecord
	queryErr error
	lastCond query.Condition
}

func (f *fakeStore) PutUser(context.Context, storage.UserRecord) error { return nil }

func (f *fakeStore) GetUser(context.Context, string) (storage.UserRecord, error) {
	return storage.UserRecord{}, storage.ErrNotFound
}

func (f *fakeStore) QueryUsers(_ context.Context, cond query.Condition, visit func(storage.UserRecord) error) error {
	f.lastCond = cond
	if f.queryErr != nil {
		return f.queryErr
	}
	for _, user := range f.users {
		if err := visit(user); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStore) Close() error { return nil }

type fakeUserStream struct {
	ctx     context.Context
	sent    []*statsv1.User
	sendErr error
}

func (f *fakeUserStream) Send(user *statsv1.User) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, user)
	return nil
}

func (f *fakeUserStream) Context() context.Context {
	if f.ctx == nil {
		return context.Background()
	}
	return f.ctx
}

func TestQueryStreamsMatchingUsers(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: []storage.UserRecord{
		{Email: "a@example.com", Name: "A", ViewedButNotStarted: []uint32{1}},
		{Email: "b@example.com", Name: "B", StartedButNotFinished: []uint32{2}},
	}}
	svc := NewService(store)
	stream := &fakeUserStream{}

	if err := svc.streamQuery(&statsv1.QueryRequest{}, stream); err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("sent %d users, want 2", len(stream.sent))
	}
	if stream.sent[0].GetEmail() != "a@example.com" {
		t.Fatalf("first user = %q", stream.sent[0].GetEmail())
	}
	if stream.sent[1].GetStartedButNotFinished()[0] != 2 {
		t.Fatalf("id lists not mapped: %v", stream.sent[1].GetStartedButNotFinished())
	}
	if !query.IsUniversal(store.lastCond) {
		t.Fatalf("empty request must query the universal condition, got %q", store.lastCond.Clause)
	}
}

func TestQueryRejectsUnknownField(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeStore{})
	err := svc.streamQuery(&statsv1.QueryRequest{
		Timestamps: map[string]*statsv1.TimeQuery{"deleted_at": {}},
	}, &fakeUserStream{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestQueryStoreErrorIsInternal(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeStore{queryErr: errors.New("db gone")})
	err := svc.streamQuery(&statsv1.QueryRequest{}, &fakeUserStream{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.Internal)
	}
}

func TestQuerySendErrorPropagates(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: []storage.UserRecord{{Email: "a@example.com"}}}
	svc := NewService(store)
	stream := &fakeUserStream{sendErr: status.Error(codes.Unavailable, "client went away")}

	err := svc.streamQuery(&statsv1.QueryRequest{}, stream)
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.Unavailable)
	}
}

func TestRawQueryTranslatesFilter(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: []storage.UserRecord{{Email: "a@example.com"}}}
	svc := NewService(store)
	stream := &fakeUserStream{}

	if err := svc.streamRawQuery(&statsv1.RawQueryRequest{Filter: `email = "a@example.com"`}, stream); err != nil {
		t.Fatalf("raw query: %v", err)
	}
	if store.lastCond.Clause != "email = ?" {
		t.Fatalf("condition = %q, want parameterized clause", store.lastCond.Clause)
	}
	if len(stream.sent) != 1 {
		t.Fatalf("sent %d users, want 1", len(stream.sent))
	}
}

func TestRawQueryRejectsMalformedFilter(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeStore{})
	err := svc.streamRawQuery(&statsv1.RawQueryRequest{Filter: "created_at >="}, &fakeUserStream{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestQueryWithoutStoreIsInternal(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	err := svc.streamQuery(&statsv1.QueryRequest{}, &fakeUserStream{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.Internal)
	}
}
