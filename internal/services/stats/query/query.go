// Package query compiles cohort queries into parameterized SQL conditions.
//
// Values never reach the SQL text directly: every user-supplied bound or id
// becomes a positional parameter, and field names are resolved against a fixed
// column allowlist.
package query

import (
	"fmt"
	"sort"
	"strings"

	statsv1 "github.com/kailanyue/crm/api/gen/go/stats/v1"
)

// Condition is a parameterized SQL WHERE fragment.
type Condition struct {
	// Clause is the SQL text with positional placeholders (e.g. "created_at >= ?").
	Clause string
	// Params are the positional parameters for the clause.
	Params []any
}

// timeColumns maps queryable time fields to user_stats columns (Unix millis).
var timeColumns = map[string]string{
	"created_at":      "created_at",
	"last_visited_at": "last_visited_at",
	"last_watched_at": "last_watched_at",
}

// idColumns maps queryable id-set fields to user_stats JSON array columns.
var idColumns = map[string]string{
	"viewed_but_not_started":   "viewed_but_not_started",
	"started_but_not_finished": "started_but_not_finished",
}

// Universal returns the condition that matches every user.
func Universal() Condition {
	return Condition{Clause: "TRUE"}
}

// IsUniversal reports whether the condition matches every user.
func IsUniversal(c Condition) bool {
	return c.Clause == "" || c.Clause == "TRUE"
}

// Compile turns a cohort query into one conjunctive SQL condition.
//
// Compilation is total over the declared field set: absent constraints, empty
// id sets and open-ended time ranges all compile to trivially-true clauses,
// and an empty request compiles to the universal condition. The only rejection
// is a field name outside the allowlist. Clause order follows sorted field
// names so that the same query always produces the same SQL.
func Compile(req *statsv1.QueryRequest) (Condition, error) {
	if req == nil {
		return Universal(), nil
	}

	clauses := make([]string, 0, len(req.GetTimestamps())+len(req.GetIds()))
	params := make([]any, 0)

	for _, field := range sortedKeys(req.GetTimestamps()) {
		column, ok := timeColumns[field]
		if !ok {
			return Condition{}, fmt.Errorf("unknown time field %q", field)
		}
		clause, clauseParams := timeClause(column, req.GetTimestamps()[field])
		clauses = append(clauses, clause)
		params = append(params, clauseParams...)
	}

	for _, field := range sortedKeys(req.GetIds()) {
		column, ok := idColumns[field]
		if !ok {
			return Condition{}, fmt.Errorf("unknown id field %q", field)
		}
		clause, clauseParams := idClause(column, req.GetIds()[field])
		clauses = append(clauses, clause)
		params = append(params, clauseParams...)
	}

	if len(clauses) == 0 {
		return Universal(), nil
	}
	return Condition{Clause: strings.Join(clauses, " AND "), Params: params}, nil
}

// timeClause emits a range clause for one time field. Bounds are inclusive;
// a fully open range still emits TRUE to keep the conjunction shape stable.
func timeClause(column string, tq *statsv1.TimeQuery) (string, []any) {
	lower := tq.GetLower()
	upper := tq.GetUpper()
	switch {
	case lower != nil && upper != nil:
		return column + " BETWEEN ? AND ?", []any{lower.AsTime().UnixMilli(), upper.AsTime().UnixMilli()}
	case lower != nil:
		return column + " >= ?", []any{lower.AsTime().UnixMilli()}
	case upper != nil:
		return column + " <= ?", []any{upper.AsTime().UnixMilli()}
	default:
		return "TRUE", nil
	}
}

// idClause requires every queried id to be a member of the column's JSON
// array. An empty id set is no constraint, not an empty cohort.
func idClause(column string, iq *statsv1.IdQuery) (string, []any) {
	ids := iq.GetIds()
	if len(ids) == 0 {
		return "TRUE", nil
	}
	memberships := make([]string, 0, len(ids))
	params := make([]any, 0, len(ids))
	for _, id := range ids {
		memberships = append(memberships, "EXISTS (SELECT 1 FROM json_each("+column+") WHERE json_each.value = ?)")
		params = append(params, int64(id))
	}
	if len(memberships) == 1 {
		return memberships[0], params
	}
	return "(" + strings.Join(memberships, " AND ") + ")", params
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
