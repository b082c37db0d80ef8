// Package metadata parses metadata service flags and launches the service.
package metadata

import (
	"context"
	"flag"

	entrypoint "github.com/kailanyue/crm/internal/platform/cmd"
	server "github.com/kailanyue/crm/internal/services/metadata/app"
)

// Config holds metadata command configuration.
type Config struct {
	Port int `env:"CRM_METADATA_PORT" envDefault:"50002"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The metadata gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the metadata gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMetadata, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
