package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ListQuery assembles a filtered listing as a pair of queries, a COUNT(*)
// query and a page query, rendered from one accumulated predicate list.
// Because both render from the same list, the count and the page can never
// disagree on filtering.
//
// The FROM clause, select columns, and ORDER BY clause are trusted strings
// owned by the calling repository; filter values are always bound as
// parameters. Limit and offset are validated non-negative integers and
// bound as parameters too.
//
// Example usage:
//
//	q := NewListQuery("jobs j JOIN job_categories c ON c.id = j.category_id",
//		"j.id", "j.title", "c.name AS category_name")
//	q.WhereEqual("j.status", "active")
//	q.OrderBy("j.created_at DESC, j.id DESC")
//	if err := q.Window(20, 40); err != nil { ... }
//
//	countSQL, countArgs := q.CountSQL()
//	pageSQL, pageArgs := q.PageSQL()
type ListQuery struct {
	from     string
	columns  []string
	preds    []predicate
	orderBy  string
	limit    int
	offset   int
	windowed bool
}

// predicate is a single WHERE condition with its bound values. The expr uses
// '?' placeholders which are renumbered to $n when the query is rendered.
type predicate struct {
	expr string
	args []any
}

// NewListQuery creates a ListQuery over the given FROM clause selecting the
// given column expressions.
func NewListQuery(from string, columns ...string) *ListQuery {
	return &ListQuery{
		from:    from,
		columns: columns,
		limit:   -1,
		offset:  -1,
	}
}

// Where appends a raw predicate with '?' placeholders for its bound values.
// The placeholder count must match len(args).
func (q *ListQuery) Where(expr string, args ...any) *ListQuery {
	q.preds = append(q.preds, predicate{expr: expr, args: args})
	return q
}

// WhereEqual appends an equality predicate on a (possibly qualified) column.
// The column identifier is sanitized; the value is bound.
func (q *ListQuery) WhereEqual(column string, value any) *ListQuery {
	return q.Where(sanitizeQualifiedIdentifier(column)+" = ?", value)
}

// WhereSearch appends a case-insensitive substring predicate matching the
// needle against any of the given columns (ORed together inside a single
// predicate). An empty needle appends nothing.
func (q *ListQuery) WhereSearch(needle string, columns ...string) *ListQuery {
	needle = strings.TrimSpace(needle)
	if needle == "" || len(columns) == 0 {
		return q
	}

	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	pattern := "%" + escapeLikePattern(needle) + "%"
	for i, col := range columns {
		parts[i] = sanitizeQualifiedIdentifier(col) + " ILIKE ?"
		args[i] = pattern
	}
	return q.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// OrderBy sets the ORDER BY clause used by the page query. The clause is a
// trusted string; it is ignored by the count query.
func (q *ListQuery) OrderBy(clause string) *ListQuery {
	q.orderBy = clause
	return q
}

// Window sets the row window for the page query. Limit and offset cannot be
// bound in every backend position, so they are validated here before use.
func (q *ListQuery) Window(limit, offset int) error {
	if limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", limit)
	}
	if offset < 0 {
		return fmt.Errorf("offset must be non-negative, got %d", offset)
	}
	q.limit = limit
	q.offset = offset
	q.windowed = true
	return nil
}

// PredicateCount returns the number of accumulated predicates.
func (q *ListQuery) PredicateCount() int {
	return len(q.preds)
}

// CountSQL renders the total-count query and its bound arguments.
func (q *ListQuery) CountSQL() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM ")
	sb.WriteString(q.from)
	args := q.writeWhere(&sb, 1)
	return sb.String(), args
}

// PageSQL renders the page query with predicates identical to CountSQL,
// plus ordering and the row window, and returns its bound arguments.
func (q *ListQuery) PageSQL() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.from)
	args := q.writeWhere(&sb, 1)

	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	if q.windowed {
		n := len(args) + 1
		sb.WriteString(" LIMIT $")
		sb.WriteString(strconv.Itoa(n))
		sb.WriteString(" OFFSET $")
		sb.WriteString(strconv.Itoa(n + 1))
		args = append(args, q.limit, q.offset)
	}
	return sb.String(), args
}

// writeWhere renders the shared WHERE clause into sb, renumbering '?'
// placeholders to $n starting at startParam, and returns the bound args.
func (q *ListQuery) writeWhere(sb *strings.Builder, startParam int) []any {
	if len(q.preds) == 0 {
		return nil
	}

	sb.WriteString(" WHERE ")
	var args []any
	n := startParam
	for i, p := range q.preds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		expr := p.expr
		for range p.args {
			expr = strings.Replace(expr, "?", "$"+strconv.Itoa(n), 1)
			n++
		}
		sb.WriteString(expr)
		args = append(args, p.args...)
	}
	return args
}

// sanitizeQualifiedIdentifier sanitizes identifiers like "column" or
// "table.column". It splits on '.' and uses pgx.Identifier to quote each part.
func sanitizeQualifiedIdentifier(ident string) string {
	parts := strings.Split(ident, ".")
	return pgx.Identifier(parts).Sanitize()
}

// escapeLikePattern escapes LIKE/ILIKE metacharacters in user input so a
// search for "100%" matches literally.
func escapeLikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
