package discovery

import "testing"

func TestDefaultGRPCAddr(t *testing.T) {
	cases := map[string]string{
		ServiceCrm:          "crm:50000",
		ServiceStats:        "stats:50001",
		ServiceMetadata:     "metadata:50002",
		ServiceNotification: "notification:50003",
	}
	for service, want := range cases {
		if got := DefaultGRPCAddr(service); got != want {
			t.Fatalf("DefaultGRPCAddr(%q) = %q, want %q", service, got, want)
		}
	}
}

func TestDefaultGRPCAddrUnknownService(t *testing.T) {
	if got := DefaultGRPCAddr("billing"); got != "" {
		t.Fatalf("expected empty addr for unknown service, got %q", got)
	}
}

func TestDefaultGRPCPort(t *testing.T) {
	if got := DefaultGRPCPort(" stats "); got != 50001 {
		t.Fatalf("DefaultGRPCPort(stats) = %d, want 50001", got)
	}
	if got := DefaultGRPCPort("billing"); got != 0 {
		t.Fatalf("expected 0 for unknown service, got %d", got)
	}
}

func TestOrDefaultGRPCAddr(t *testing.T) {
	if got := OrDefaultGRPCAddr(" custom:9000 ", ServiceStats); got != "custom:9000" {
		t.Fatalf("expected explicit grpc addr to win, got %q", got)
	}
	if got := OrDefaultGRPCAddr("", ServiceNotification); got != "notification:50003" {
		t.Fatalf("expected default grpc addr, got %q", got)
	}
}
