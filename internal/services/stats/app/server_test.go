package server

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	statsv1 "github.com/kailanyue/crm/api/gen/go/stats/v1"
	"github.com/kailanyue/crm/internal/services/stats/storage"
	statssqlite "github.com/kailanyue/crm/internal/services/stats/storage/sqlite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestServer_QueryRoundTrip(t *testing.T) {
	dbPath := t.TempDir() + "/stats.db"
	t.Setenv("CRM_STATS_DB_PATH", dbPath)

	seed, err := statssqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open seed store: %v", err)
	}
	now := time.Now()
	users := []storage.UserRecord{
		{Email: "old@example.com", Name: "Old", CreatedAt: now.AddDate(0, 0, -30), LastVisitedAt: now},
		{Email: "new@example.com", Name: "New", CreatedAt: now, LastVisitedAt: now},
	}
	for _, user := range users {
		if err := seed.PutUser(context.Background(), user); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	if err := seed.Close(); err != nil {
		t.Fatalf("close seed store: %v", err)
	}

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial stats server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})

	client := statsv1.NewUserStatsServiceClient(conn)

	stream, err := client.Query(context.Background(), &statsv1.QueryRequest{
		Timestamps: map[string]*statsv1.TimeQuery{
			"created_at": {Upper: timestamppb.New(now.AddDate(0, 0, -7))},
		},
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	var emails []string
	for {
		user, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			t.Fatalf("recv: %v", recvErr)
		}
		emails = append(emails, user.GetEmail())
	}
	if len(emails) != 1 || emails[0] != "old@example.com" {
		t.Fatalf("emails = %v, want [old@example.com]", emails)
	}
}
