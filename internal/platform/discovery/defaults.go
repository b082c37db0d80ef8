// Package discovery centralizes internal service-discovery conventions.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceCrm is the campaign orchestration gRPC service identity.
	ServiceCrm = "crm"
	// ServiceStats is the user-statistics gRPC service identity.
	ServiceStats = "stats"
	// ServiceMetadata is the content-metadata gRPC service identity.
	ServiceMetadata = "metadata"
	// ServiceNotification is the notification sink gRPC service identity.
	ServiceNotification = "notification"
)

var grpcPorts = map[string]int{
	ServiceCrm:          50000,
	ServiceStats:        50001,
	ServiceMetadata:     50002,
	ServiceNotification: 50003,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), grpcPorts)
}

// DefaultGRPCPort returns the conventional port for a service, 0 when unknown.
func DefaultGRPCPort(service string) int {
	return grpcPorts[strings.TrimSpace(service)]
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

func defaultAddr(service string, ports map[string]int) string {
	port, ok := ports[service]
	if !ok || port <= 0 {
		return ""
	}
	return service + ":" + strconv.Itoa(port)
}
