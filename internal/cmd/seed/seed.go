// Package seed fills the backend stores with generated development data.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/kailanyue/crm/internal/platform/cmd"
	metadatastorage "github.com/kailanyue/crm/internal/services/metadata/storage"
	metadatasqlite "github.com/kailanyue/crm/internal/services/metadata/storage/sqlite"
	statsstorage "github.com/kailanyue/crm/internal/services/stats/storage"
	statssqlite "github.com/kailanyue/crm/internal/services/stats/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	StatsDBPath    string `env:"CRM_STATS_DB_PATH" envDefault:"data/stats.db"`
	MetadataDBPath string `env:"CRM_METADATA_DB_PATH" envDefault:"data/metadata.db"`

	Users    int
	Contents int
	Seed     int64
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.StatsDBPath, "stats-db", cfg.StatsDBPath, "stats SQLite database path")
	fs.StringVar(&cfg.MetadataDBPath, "metadata-db", cfg.MetadataDBPath, "metadata SQLite database path")
	fs.IntVar(&cfg.Users, "users", 100, "number of users to generate")
	fs.IntVar(&cfg.Contents, "contents", 20, "number of contents to generate")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducibility (0 = time-based)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates contents and users and writes them to the SQLite stores.
func Run(ctx context.Context, cfg Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	now := time.Now().UTC()

	contents := GenerateContents(rng, cfg.Contents, now)
	users := GenerateUsers(rng, cfg.Users, cfg.Contents, now)

	if err := writeContents(ctx, cfg.MetadataDBPath, contents); err != nil {
		return err
	}
	if err := writeUsers(ctx, cfg.StatsDBPath, users); err != nil {
		return err
	}

	log.Printf("seeded %d contents into %s and %d users into %s (seed %d)",
		len(contents), cfg.MetadataDBPath, len(users), cfg.StatsDBPath, seed)
	return nil
}

var firstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elisa", "Felipe", "Gabriela", "Hugo",
	"Iris", "Joao", "Karen", "Lucas", "Marina", "Nelson", "Olivia", "Paulo",
}

var lastNames = []string{
	"Almeida", "Barros", "Costa", "Dias", "Esteves", "Ferreira", "Gomes",
	"Henrique", "Lima", "Moraes", "Nunes", "Oliveira", "Pereira", "Souza",
}

var topics = []string{
	"Rust", "Go", "SQL", "Kubernetes", "Linux", "Networking", "Compilers",
	"Distributed Systems", "Databases", "Concurrency",
}

var formats = []string{"Crash Course", "Deep Dive", "Workshop", "Field Guide"}

// GenerateUsers produces deterministic fake user statistics rows. Content id
// lists reference ids in [1, contentCount].
func GenerateUsers(rng *rand.Rand, count, contentCount int, now time.Time) []statsstorage.UserRecord {
	users := make([]statsstorage.UserRecord, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		created := now.AddDate(0, 0, -rng.Intn(365))
		visited := randBetween(rng, created, now)
		watched := randBetween(rng, created, visited)

		users = append(users, statsstorage.UserRecord{
			Email:                 fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Name:                  first + " " + last,
			CreatedAt:             created,
			LastVisitedAt:         visited,
			LastWatchedAt:         watched,
			ViewedButNotStarted:   randIDs(rng, contentCount),
			StartedButNotFinished: randIDs(rng, contentCount),
		})
	}
	return users
}

// GenerateContents produces deterministic fake content rows with ids 1..count.
func GenerateContents(rng *rand.Rand, count int, now time.Time) []metadatastorage.ContentRecord {
	contents := make([]metadatastorage.ContentRecord, 0, count)
	for i := 1; i <= count; i++ {
		topic := topics[rng.Intn(len(topics))]
		format := formats[rng.Intn(len(formats))]
		author := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]

		contents = append(contents, metadatastorage.ContentRecord{
			ID:          uint32(i),
			Name:        fmt.Sprintf("%s %s", topic, format),
			Description: fmt.Sprintf("A %s on %s.", strings.ToLower(format), topic),
			Authors:     []string{author},
			URL:         fmt.Sprintf("https://contents.example.com/%d", i),
			Image:       fmt.Sprintf("https://contents.example.com/%d/cover.png", i),
			Views:       uint64(rng.Intn(100_000)),
			Likes:       uint64(rng.Intn(10_000)),
			PublishedAt: now.AddDate(0, 0, -rng.Intn(730)),
		})
	}
	return contents
}

func randBetween(rng *rand.Rand, lower, upper time.Time) time.Time {
	span := upper.Sub(lower)
	if span <= 0 {
		return lower
	}
	return lower.Add(time.Duration(rng.Int63n(int64(span))))
}

func randIDs(rng *rand.Rand, contentCount int) []uint32 {
	if contentCount <= 0 {
		return nil
	}
	count := rng.Intn(4)
	seen := make(map[uint32]struct{}, count)
	var ids []uint32
	for len(ids) < count {
		id := uint32(rng.Intn(contentCount) + 1)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func writeUsers(ctx context.Context, path string, users []statsstorage.UserRecord) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	store, err := statssqlite.Open(path)
	if err != nil {
		return fmt.Errorf("open stats store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("close stats store: %v", closeErr)
		}
	}()

	for _, user := range users {
		if err := store.PutUser(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", user.Email, err)
		}
	}
	return nil
}

func writeContents(ctx context.Context, path string, contents []metadatastorage.ContentRecord) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	store, err := metadatasqlite.Open(path)
	if err != nil {
		return fmt.Errorf("open metadata store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("close metadata store: %v", closeErr)
		}
	}()

	for _, content := range contents {
		if err := store.PutContent(ctx, content); err != nil {
			return fmt.Errorf("seed content %d: %w", content.ID, err)
		}
	}
	return nil
}

func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	return nil
}
