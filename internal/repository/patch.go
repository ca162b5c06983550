package repository

import (
	"fmt"
	"strings"
)

// updateBuilder accumulates SET clauses and positional args for a partial
// UPDATE, so each repository only names the columns its patch provides.
type updateBuilder struct {
	sets []string
	args []interface{}
}

// set adds a column assignment bound to the next positional parameter
func (b *updateBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// setExpr adds a raw assignment with no bound parameter (e.g. NOW())
func (b *updateBuilder) setExpr(expr string) {
	b.sets = append(b.sets, expr)
}

// empty reports whether no assignments were added
func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

// clause returns the joined SET list
func (b *updateBuilder) clause() string {
	return strings.Join(b.sets, ", ")
}

// nextArg returns the positional index for the next parameter after the
// accumulated ones (used for the WHERE clause)
func (b *updateBuilder) nextArg() int {
	return len(b.args) + 1
}
