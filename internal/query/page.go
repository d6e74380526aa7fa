package query

import "strconv"

const (
	// DefaultPageNum is the page requested when the caller supplies none.
	DefaultPageNum = 1
	// DefaultPageSize is the page size used when the caller supplies none.
	DefaultPageSize = 10
)

// Page describes a requested result page. No upper bound is enforced on
// Size; the caller is trusted.
type Page struct {
	Num  int
	Size int
}

// ParsePage reads pageNum/pageSize from the parameter map. Missing or
// non-numeric values degrade to the defaults by policy instead of
// failing the request.
func ParsePage(params map[string]string) Page {
	return Page{
		Num:  parsePositive(params[ParamPageNum], DefaultPageNum),
		Size: parsePositive(params[ParamPageSize], DefaultPageSize),
	}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Num - 1) * p.Size
}

// Limit returns the maximum number of rows in the page.
func (p Page) Limit() int {
	return p.Size
}

func parsePositive(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return defaultValue
	}
	return n
}
