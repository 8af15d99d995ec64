package filter

import (
	"encoding/json"

	"github.com/spec-kit/request-tracker/internal/record"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ViewState is the client-held list state: filters plus pagination.
type ViewState struct {
	Filters  Filter `json:"filters"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// DefaultViewState is the state of a fresh session.
func DefaultViewState() ViewState {
	return ViewState{Filters: Default(), Page: DefaultPage, PageSize: DefaultPageSize}
}

// Normalize sanitizes the filters and coerces pagination to positive values.
func (v ViewState) Normalize() ViewState {
	return ViewState{
		Filters:  Sanitize(v.Filters),
		Page:     positive(v.Page, DefaultPage, 0),
		PageSize: positive(v.PageSize, DefaultPageSize, MaxPageSize),
	}
}

// Offset returns the row offset of the current page.
func (v ViewState) Offset() int {
	n := v.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Serialize encodes the normalized state for client storage.
func Serialize(v ViewState) ([]byte, error) {
	return json.Marshal(v.Normalize())
}

// Deserialize decodes stored state. Corrupt or foreign data yields the
// default state; it never returns an error.
func Deserialize(data []byte) ViewState {
	rec, err := record.Decode(data)
	if err != nil {
		return DefaultViewState()
	}
	filters, _ := rec.Value("filters")
	page, _ := rec.Int("page")
	size, _ := rec.Int("pageSize", "page_size")
	return ViewState{
		Filters:  Sanitize(filters),
		Page:     positive(page, DefaultPage, 0),
		PageSize: positive(size, DefaultPageSize, MaxPageSize),
	}
}

func positive(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}
