// Package notification parses notification service flags and launches the service.
package notification

import (
	"context"
	"flag"

	entrypoint "github.com/kailanyue/crm/internal/platform/cmd"
	server "github.com/kailanyue/crm/internal/services/notification/app"
)

// Config holds notification command configuration.
type Config struct {
	Port int `env:"CRM_NOTIFICATION_PORT" envDefault:"50003"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The notification gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the notification gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceNotification, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
