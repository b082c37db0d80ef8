package query

import (
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Declarations returns the field declarations accepted by raw filters.
func Declarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("email", filtering.TypeString),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("created_at", filtering.TypeTimestamp),
		filtering.DeclareIdent("last_visited_at", filtering.TypeTimestamp),
		filtering.DeclareIdent("last_watched_at", filtering.TypeTimestamp),
	)
}

// filterColumns maps filter field names to user_stats columns.
var filterColumns = map[string]string{
	"email":           "email",
	"name":            "name",
	"created_at":      "created_at",
	"last_visited_at": "last_visited_at",
	"last_watched_at": "last_watched_at",
}

// ParseFilter parses an AIP-160 filter expression into a SQL condition.
// An empty filter matches every user.
func ParseFilter(filterStr string) (Condition, error) {
	if strings.TrimSpace(filterStr) == "" {
		return Universal(), nil
	}

	decls, err := Declarations()
	if err != nil {
		return Condition{}, fmt.Errorf("create declarations: %w", err)
	}

	filter, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return Condition{}, fmt.Errorf("parse filter: %w", err)
	}

	return translateExpr(filter.CheckedExpr.Expr)
}

func translateExpr(e *expr.Expr) (Condition, error) {
	if e == nil {
		return Condition{}, nil
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return translateCall(kind.CallExpr)
	default:
		return Condition{}, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

func translateCall(call *expr.Expr_Call) (Condition, error) {
	switch call.Function {
	case "_&&_", "AND":
		return translateConnective(call.Args, "AND")
	case "_||_", "OR":
		return translateConnective(call.Args, "OR")
	case "_==_", "=":
		return translateComparison(call.Args, "=")
	case "_!=_", "!=":
		return translateComparison(call.Args, "!=")
	case "_<_", "<":
		return translateComparison(call.Args, "<")
	case "_<=_", "<=":
		return translateComparison(call.Args, "<=")
	case "_>_", ">":
		return translateComparison(call.Args, ">")
	case "_>=_", ">=":
		return translateComparison(call.Args, ">=")
	default:
		return Condition{}, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func translateConnective(args []*expr.Expr, op string) (Condition, error) {
	if len(args) != 2 {
		return Condition{}, fmt.Errorf("%s requires 2 arguments", op)
	}

	left, err := translateExpr(args[0])
	if err != nil {
		return Condition{}, err
	}

	right, err := translateExpr(args[1])
	if err != nil {
		return Condition{}, err
	}

	return Condition{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (Condition, error) {
	if len(args) != 2 {
		return Condition{}, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return Condition{}, err
	}

	column, ok := filterColumns[field]
	if !ok {
		return Condition{}, fmt.Errorf("unknown field: %s", field)
	}

	value, err := extractValue(args[1])
	if err != nil {
		return Condition{}, err
	}

	return Condition{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func extractFieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractValue(e *expr.Expr) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		return extractConstValue(kind.ConstExpr)
	case *expr.Expr_CallExpr:
		// timestamp("...") value position calls compare against millis columns.
		if kind.CallExpr.Function == "timestamp" && len(kind.CallExpr.Args) == 1 {
			return extractTimestampMillis(kind.CallExpr.Args[0])
		}
		return nil, fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.Function)
	default:
		return nil, fmt.Errorf("expected constant or timestamp, got %T", kind)
	}
}

func extractConstValue(c *expr.Constant) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("nil constant")
	}

	switch kind := c.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

func extractTimestampMillis(e *expr.Expr) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("nil timestamp argument")
	}

	constExpr, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return 0, fmt.Errorf("timestamp argument must be a constant string")
	}
	strVal, ok := constExpr.ConstExpr.ConstantKind.(*expr.Constant_StringValue)
	if !ok {
		return 0, fmt.Errorf("timestamp argument must be a string")
	}

	t, err := time.Parse(time.RFC3339, strVal.StringValue)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, strVal.StringValue)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", strVal.StringValue)
		}
	}
	return t.UTC().UnixMilli(), nil
}
