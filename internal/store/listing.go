package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// ListOptions is the common knob set for every listing endpoint.
// Handlers coerce unusable page/limit input to the defaults before the
// store sees it; the engine still guards so a direct caller cannot
// produce a negative offset.
type ListOptions struct {
	Search string
	Page   int
	Limit  int
}

// listQuery assembles the shared count-plus-window read behind every
// List operation: one WHERE clause, a COUNT over it, then a page of rows
// ordered newest first. The two reads are separate statements with no
// snapshot between them, so under concurrent writes the count and the
// page can drift slightly; that is accepted.
type listQuery struct {
	table   string
	columns string
	where   []string
	args    []any
	page    int
	limit   int
}

func (q *listQuery) and(cond string, args ...any) {
	q.where = append(q.where, cond)
	q.args = append(q.args, args...)
}

// search adds a case-insensitive substring match over the given fields.
// An empty term matches everything and adds no clause.
func (q *listQuery) search(term string, fields ...string) {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	conds := make([]string, len(fields))
	for i, f := range fields {
		conds[i] = "LOWER(" + f + ") LIKE ? ESCAPE '!'"
		q.args = append(q.args, pattern)
	}
	q.where = append(q.where, "("+strings.Join(conds, " OR ")+")")
}

// dateRange widens an inclusive from/to day filter to start-of-day and
// end-of-day boundaries on the given column.
func (q *listQuery) dateRange(column string, from, to *time.Time) {
	if from != nil {
		y, m, d := from.Date()
		q.and(column+" >= ?", time.Date(y, m, d, 0, 0, 0, 0, from.Location()))
	}
	if to != nil {
		y, m, d := to.Date()
		q.and(column+" <= ?", time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), to.Location()))
	}
}

// run executes the count and the windowed fetch, invoking scan once per
// row. It returns the total number of matching rows.
func (q *listQuery) run(ctx context.Context, db *sql.DB, scan func(*sql.Rows) error) (int, error) {
	if q.page < 1 {
		q.page = 1
	}
	if q.limit < 1 {
		q.limit = 10
	}

	whereSQL := ""
	if len(q.where) > 0 {
		whereSQL = " WHERE " + strings.Join(q.where, " AND ")
	}

	var total int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+q.table+whereSQL, q.args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", q.table, err)
	}

	query := "SELECT " + q.columns + " FROM " + q.table + whereSQL +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args := append(append([]any{}, q.args...), q.limit, (q.page-1)*q.limit)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("listing %s: %w", q.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return 0, fmt.Errorf("scanning %s row: %w", q.table, err)
		}
	}
	return total, rows.Err()
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search
// terms. '!' is the escape character because a bare backslash is not
// portable between the MySQL and SQLite dialects.
func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}
