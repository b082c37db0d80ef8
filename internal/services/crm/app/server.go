// Package server wires the campaign orchestration runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	crmv1 "github.com/kailanyue/crm/api/gen/go/crm/v1"
	metadatav1 "github.com/kailanyue/crm/api/gen/go/metadata/v1"
	notificationv1 "github.com/kailanyue/crm/api/gen/go/notification/v1"
	statsv1 "github.com/kailanyue/crm/api/gen/go/stats/v1"
	"github.com/kailanyue/crm/internal/platform/config"
	"github.com/kailanyue/crm/internal/platform/discovery"
	platformgrpc "github.com/kailanyue/crm/internal/platform/grpc"
	crmservice "github.com/kailanyue/crm/internal/services/crm/api/grpc/crm"
	"github.com/kailanyue/crm/internal/services/crm/domain"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	StatsAddr        string        `env:"CRM_STATS_ADDR"`
	MetadataAddr     string        `env:"CRM_METADATA_ADDR"`
	NotificationAddr string        `env:"CRM_NOTIFICATION_ADDR"`
	Sender           string        `env:"CRM_SENDER" envDefault:"crm@example.com"`
	DialTimeout      time.Duration `env:"CRM_GRPC_DIAL_TIMEOUT" envDefault:"30s"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	cfg.StatsAddr = discovery.OrDefaultGRPCAddr(cfg.StatsAddr, discovery.ServiceStats)
	cfg.MetadataAddr = discovery.OrDefaultGRPCAddr(cfg.MetadataAddr, discovery.ServiceMetadata)
	cfg.NotificationAddr = discovery.OrDefaultGRPCAddr(cfg.NotificationAddr, discovery.ServiceNotification)
	return cfg
}

// Server hosts the campaign orchestration gRPC API and the long-lived client
// connections to the three backend services.
type Server struct {
	listener   net.Listener
	grpcServer *gogrpc.Server
	health     *health.Server
	conns      []*gogrpc.ClientConn
}

// New creates a configured orchestration server listening on the provided
// port, dialing the backends with health checks first.
func New(ctx context.Context, port int) (*Server, error) {
	return NewWithAddr(ctx, fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured orchestration server for the provided
// address.
func NewWithAddr(ctx context.Context, addr string) (*Server, error) {
	env := loadServerEnv()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	server := &Server{listener: listener}
	backends := []struct {
		name string
		addr string
	}{
		{"stats", env.StatsAddr},
		{"metadata", env.MetadataAddr},
		{"notification", env.NotificationAddr},
	}
	for _, backend := range backends {
		conn, err := platformgrpc.DialWithHealth(
			ctx,
			nil,
			backend.addr,
			env.DialTimeout,
			log.Printf,
			platformgrpc.DefaultClientDialOptions()...,
		)
		if err != nil {
			server.Close()
			return nil, fmt.Errorf("dial %s service: %w", backend.name, err)
		}
		server.conns = append(server.conns, conn)
	}

	orchestrator := &domain.Orchestrator{
		Stats:        statsBackend{client: statsv1.NewUserStatsServiceClient(server.conns[0])},
		Metadata:     metadataBackend{client: metadatav1.NewMetadataServiceClient(server.conns[1])},
		Notification: notificationBackend{client: notificationv1.NewNotificationServiceClient(server.conns[2])},
		Sender:       env.Sender,
	}

	grpcServer := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := crmservice.NewService(orchestrator)
	healthServer := health.NewServer()
	crmv1.RegisterCrmServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("crm.v1.CrmService", grpc_health_v1.HealthCheckResponse_SERVING)

	server.grpcServer = grpcServer
	server.health = healthServer
	return server, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an orchestration server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(ctx, port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("crm server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases server resources and backend connections.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	for _, conn := range s.conns {
		if err := conn.Close(); err != nil {
			log.Printf("close backend connection: %v", err)
		}
	}
}
