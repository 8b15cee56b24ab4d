package postgres

import (
	"fmt"
	"strings"
)

// updateBuilder collects SET assignments for a partial update so only the
// fields a patch actually provides reach the statement.
type updateBuilder struct {
	sets []string
	args []any
}

// Set appends "column = $n" with the next placeholder index.
func (b *updateBuilder) Set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// Arg appends a bare argument (for WHERE clauses) and returns its
// placeholder.
func (b *updateBuilder) Arg(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// SetClause joins the collected assignments.
func (b *updateBuilder) SetClause() string {
	return strings.Join(b.sets, ", ")
}

// Empty reports whether no assignment was collected.
func (b *updateBuilder) Empty() bool {
	return len(b.sets) == 0
}

// nullIfEmpty maps "" to NULL; the API treats an explicit empty string as
// a request to clear a nullable column.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
