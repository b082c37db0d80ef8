package query

import (
	"testing"
	"time"
)

func TestParseFilterEmptyIsUniversal(t *testing.T) {
	t.Parallel()

	cond, err := ParseFilter("   ")
	if err != nil {
		t.Fatalf("parse empty filter: %v", err)
	}
	if !IsUniversal(cond) {
		t.Fatalf("expected universal condition, got %q", cond.Clause)
	}
}

func TestParseFilterStringEquality(t *testing.T) {
	t.Parallel()

	cond, err := ParseFilter(`email = "alice@example.com"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "email = ?" {
		t.Fatalf("clause = %q, want %q", cond.Clause, "email = ?")
	}
	if len(cond.Params) != 1 || cond.Params[0] != "alice@example.com" {
		t.Fatalf("params = %v", cond.Params)
	}
}

func TestParseFilterTimestampComparison(t *testing.T) {
	t.Parallel()

	cond, err := ParseFilter(`created_at >= timestamp("2026-01-01T00:00:00Z")`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "created_at >= ?" {
		t.Fatalf("clause = %q", cond.Clause)
	}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if len(cond.Params) != 1 || cond.Params[0] != want {
		t.Fatalf("params = %v, want [%d]", cond.Params, want)
	}
}

func TestParseFilterConjunction(t *testing.T) {
	t.Parallel()

	cond, err := ParseFilter(`created_at >= timestamp("2026-01-01T00:00:00Z") AND name = "Alice"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "(created_at >= ? AND name = ?)" {
		t.Fatalf("clause = %q", cond.Clause)
	}
	if len(cond.Params) != 2 {
		t.Fatalf("params = %v", cond.Params)
	}
}

func TestParseFilterValuesNeverReachSQLText(t *testing.T) {
	t.Parallel()

	cond, err := ParseFilter(`email = "a' OR '1'='1"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if cond.Clause != "email = ?" {
		t.Fatalf("value leaked into SQL text: %q", cond.Clause)
	}
}

func TestParseFilterRejectsUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := ParseFilter(`password = "x"`); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestParseFilterRejectsMalformedExpression(t *testing.T) {
	t.Parallel()

	if _, err := ParseFilter(`created_at >=`); err == nil {
		t.Fatal("expected parse error")
	}
}
