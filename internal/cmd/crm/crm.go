// Package crm parses orchestration service flags and launches the service.
package crm

import (
	"context"
	"flag"

	entrypoint "github.com/kailanyue/crm/internal/platform/cmd"
	server "github.com/kailanyue/crm/internal/services/crm/app"
)

// Config holds crm command configuration.
type Config struct {
	Port int `env:"CRM_PORT" envDefault:"50000"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The campaign orchestration gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the campaign orchestration gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCrm, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
