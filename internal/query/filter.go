// Package query compiles caller-supplied listing parameters into
// parameterized SQL predicates and offset/limit pagination.
package query

import (
	"fmt"
	"sort"
	"strings"
)

// Reserved parameter keys consumed by pagination rather than filtering.
const (
	ParamPageNum  = "pageNum"
	ParamPageSize = "pageSize"
)

// fuzzyColumns maps exposed filter field names to post columns matched
// with a contains predicate. Keys outside this map (and outside the
// reserved set) are rejected rather than passed through to SQL.
var fuzzyColumns = map[string]string{
	"title":   "title",
	"summary": "summary",
	"content": "content",
}

// UnknownFieldError is returned when a filter key does not name an
// exposed post field.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown filter field %q", e.Field)
}

type condOp int

const (
	opEqual condOp = iota
	opContains
)

type condition struct {
	column string
	op     condOp
	value  string
}

// Filter is a compiled conjunction of predicates against post columns.
type Filter struct {
	conds []condition
}

// Compile turns a field-name → value mapping into a Filter. The status
// key compiles to an equality predicate; every other known key compiles
// to a contains predicate. Pagination keys are skipped.
func Compile(params map[string]string) (Filter, error) {
	var f Filter
	for key, value := range params {
		switch key {
		case ParamPageNum, ParamPageSize:
			continue
		case "status":
			f.conds = append(f.conds, condition{column: "status", op: opEqual, value: value})
		default:
			column, ok := fuzzyColumns[key]
			if !ok {
				return Filter{}, &UnknownFieldError{Field: key}
			}
			f.conds = append(f.conds, condition{column: column, op: opContains, value: value})
		}
	}
	// Map iteration order is random; keep the generated SQL stable.
	sort.Slice(f.conds, func(i, j int) bool { return f.conds[i].column < f.conds[j].column })
	return f, nil
}

// Empty reports whether the filter carries no predicates.
func (f Filter) Empty() bool {
	return len(f.conds) == 0
}

// Clause renders the filter as AND-joined SQL conditions on the given
// table alias, with placeholders numbered from next. It returns the
// clause (empty when the filter is empty) and the bound arguments.
func (f Filter) Clause(alias string, next int) (string, []any) {
	if len(f.conds) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(f.conds))
	args := make([]any, 0, len(f.conds))
	for _, c := range f.conds {
		switch c.op {
		case opEqual:
			parts = append(parts, fmt.Sprintf("%s.%s = $%d", alias, c.column, next))
			args = append(args, c.value)
		case opContains:
			parts = append(parts, fmt.Sprintf("%s.%s ILIKE $%d", alias, c.column, next))
			args = append(args, "%"+c.value+"%")
		}
		next++
	}
	return strings.Join(parts, " AND "), args
}
