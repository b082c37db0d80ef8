package seed

import (
	"context"
	"flag"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/kailanyue/crm/internal/services/stats/query"
	statsstorage "github.com/kailanyue/crm/internal/services/stats/storage"
	statssqlite "github.com/kailanyue/crm/internal/services/stats/storage/sqlite"
)

func TestGenerateUsersIsDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateUsers(rand.New(rand.NewSource(42)), 10, 5, now)
	b := GenerateUsers(rand.New(rand.NewSource(42)), 10, 5, now)

	if len(a) != 10 || len(b) != 10 {
		t.Fatalf("generated %d and %d users, want 10 each", len(a), len(b))
	}
	for i := range a {
		if a[i].Email != b[i].Email || !a[i].CreatedAt.Equal(b[i].CreatedAt) {
			t.Fatalf("user %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateUsersTimestampsAreOrdered(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	users := GenerateUsers(rand.New(rand.NewSource(7)), 50, 10, now)

	seen := make(map[string]struct{}, len(users))
	for _, user := range users {
		if _, ok := seen[user.Email]; ok {
			t.Fatalf("duplicate email %s", user.Email)
		}
		seen[user.Email] = struct{}{}
		if user.CreatedAt.After(user.LastVisitedAt) {
			t.Fatalf("user %s visited before joining", user.Email)
		}
		if user.LastWatchedAt.After(user.LastVisitedAt) {
			t.Fatalf("user %s watched after last visit", user.Email)
		}
		for _, id := range user.ViewedButNotStarted {
			if id < 1 || id > 10 {
				t.Fatalf("user %s references content %d outside [1,10]", user.Email, id)
			}
		}
	}
}

func TestGenerateContentsCoversRequestedIDs(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	contents := GenerateContents(rand.New(rand.NewSource(7)), 20, now)

	if len(contents) != 20 {
		t.Fatalf("generated %d contents, want 20", len(contents))
	}
	for i, content := range contents {
		if content.ID != uint32(i+1) {
			t.Fatalf("content %d has id %d", i, content.ID)
		}
		if content.Name == "" || content.URL == "" {
			t.Fatalf("content %d is missing fields: %+v", i, content)
		}
	}
}

func TestRunSeedsBothStores(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		StatsDBPath:    filepath.Join(dir, "stats.db"),
		MetadataDBPath: filepath.Join(dir, "metadata.db"),
		Users:          5,
		Contents:       3,
		Seed:           42,
	}
	if err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	store, err := statssqlite.Open(cfg.StatsDBPath)
	if err != nil {
		t.Fatalf("open stats store: %v", err)
	}
	defer store.Close()

	count := 0
	err = store.QueryUsers(context.Background(), query.Universal(), func(statsstorage.UserRecord) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("query users: %v", err)
	}
	if count != 5 {
		t.Fatalf("seeded %d users, want 5", count)
	}
}

func TestParseConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-users", "7", "-contents", "2", "-seed", "99"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Users != 7 || cfg.Contents != 2 || cfg.Seed != 99 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.StatsDBPath == "" || cfg.MetadataDBPath == "" {
		t.Fatalf("db paths not defaulted: %+v", cfg)
	}
}
