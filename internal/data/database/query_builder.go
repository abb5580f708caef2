// Package database builds parameterized SELECT statements for list endpoints
// with caller-supplied filters. Identifiers are quoted through pgx, values only
// ever travel as placeholders.
package database

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ConditionType is the SQL comparison operator applied by a Condition.
type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThan        ConditionType = ">"
	LessThan           ConditionType = "<"
	LessThanOrEqual    ConditionType = "<="
	GreaterThanOrEqual ConditionType = ">="
	ILike              ConditionType = "ILIKE"
)

// Condition is a single WHERE predicate on a column.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

// WhereCond builds a column comparison condition.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// ListQueryOptions collects everything needed to render a list query.
type ListQueryOptions struct {
	table      string
	columns    []string
	conditions []Condition
	orderBy    string
	orderDir   string
	limit      int
	offset     int
	countOnly  bool
}

// ListQueryOption mutates ListQueryOptions during construction.
type ListQueryOption func(*ListQueryOptions)

// NewListQueryOptions creates options for the given table and applies opts.
func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	o := &ListQueryOptions{
		table:   table,
		columns: []string{"*"},
		limit:   -1,
		offset:  -1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithColumns sets the selected columns. Defaults to * when unset.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.columns = cols
	}
}

// WithCondition appends a WHERE predicate. All predicates are ANDed.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.conditions = append(o.conditions, cond)
	}
}

// WithConditions appends several WHERE predicates at once.
func WithConditions(conds ...Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.conditions = append(o.conditions, conds...)
	}
}

// WithOrderBy sets the sort column and direction. Direction is forced to
// ASC or DESC; callers validate the column against their own allowlist.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.orderBy = column
		if strings.EqualFold(direction, "ASC") {
			o.orderDir = "ASC"
		} else {
			o.orderDir = "DESC"
		}
	}
}

// WithLimit caps the number of rows returned. Non-positive values disable it.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.limit = limit
	}
}

// WithOffset skips rows for pagination. Non-positive values disable it.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.offset = offset
	}
}

// WithCountOnly renders SELECT count(*) instead of the column list.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) {
		o.countOnly = true
	}
}

// BuildListQuery renders the query and its positional parameters.
//
//	query, args := BuildListQuery(NewListQueryOptions("listings",
//		WithCondition(WhereCond("status", Equal, "available")),
//		WithOrderBy("price_cents", "ASC"),
//		WithLimit(50),
//	))
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(selectList(options))
	sb.WriteString(" FROM ")
	sb.WriteString(quoteIdent(options.table))

	args := make([]any, 0, len(options.conditions))
	if len(options.conditions) > 0 {
		preds := make([]string, 0, len(options.conditions))
		for _, cond := range options.conditions {
			args = append(args, cond.Value)
			preds = append(preds, fmt.Sprintf("%s %s $%d",
				quoteIdent(cond.Field), cond.Type, len(args)))
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(preds, " AND "))
	}

	if options.countOnly {
		return sb.String(), args
	}

	if options.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(quoteIdent(options.orderBy))
		sb.WriteString(" ")
		sb.WriteString(options.orderDir)
	}
	if options.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", options.limit))
	}
	if options.offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %d", options.offset))
	}
	return sb.String(), args
}

func selectList(options *ListQueryOptions) string {
	if options.countOnly {
		return "count(*)"
	}
	cols := make([]string, len(options.columns))
	for i, c := range options.columns {
		cols[i] = quoteIdent(c)
	}
	return strings.Join(cols, ", ")
}

// quoteIdent quotes an identifier, passing * through unchanged and handling
// qualified names like "listings.status".
func quoteIdent(ident string) string {
	if ident == "*" {
		return ident
	}
	return pgx.Identifier(strings.Split(ident, ".")).Sanitize()
}
