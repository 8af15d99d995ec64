// Package filter repairs request-list filters read from untrusted client state.
package filter

import (
	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/record"
)

// All disables a filter dimension.
const All = "all"

// Filter is the canonical request-list query. Every field is a string so the
// value survives a round trip through client storage unchanged.
type Filter struct {
	Status      string `json:"status"`
	Department  string `json:"department"`
	Type        string `json:"type"`
	Level       string `json:"level"`
	Channel     string `json:"channel"`
	Q           string `json:"q"`
	Sort        string `json:"sort"`
	RequesterID string `json:"requester_id"`
	AssignedTo  string `json:"assigned_to"`
}

// Default returns the filter applied when nothing valid was stored.
func Default() Filter {
	return Filter{
		Status:      All,
		Department:  All,
		Type:        All,
		Level:       All,
		Channel:     All,
		Q:           "",
		Sort:        string(domain.DefaultSort),
		RequesterID: All,
		AssignedTo:  All,
	}
}

var (
	validStatus     = withAll(set(domain.Statuses))
	validDepartment = withAll(set(domain.Departments))
	validType       = withAll(set(domain.RequestTypes))
	validLevel      = withAll(levelSet(domain.Levels))
	validChannel    = withAll(set(domain.Channels))
	validSort       = set(domain.SortKeys)
)

// Sanitize coerces raw into a Filter, replacing every invalid field with its
// default. It never fails and Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(raw any) Filter {
	rec, _ := record.FromAny(raw)
	if f, ok := raw.(Filter); ok {
		rec = f.record()
	}
	def := Default()
	return Filter{
		Status:      pick(rec, "status", validStatus, def.Status),
		Department:  pick(rec, "department", validDepartment, def.Department),
		Type:        pick(rec, "type", validType, def.Type),
		Level:       pickLevel(rec, def.Level),
		Channel:     pick(rec, "channel", validChannel, def.Channel),
		Q:           text(rec, "q"),
		Sort:        pick(rec, "sort", validSort, def.Sort),
		RequesterID: idOrAll(rec, "requester_id"),
		AssignedTo:  idOrAll(rec, "assigned_to"),
	}
}

func (f Filter) record() record.Record {
	return record.Record{
		"status":       f.Status,
		"department":   f.Department,
		"type":         f.Type,
		"level":        f.Level,
		"channel":      f.Channel,
		"q":            f.Q,
		"sort":         f.Sort,
		"requester_id": f.RequesterID,
		"assigned_to":  f.AssignedTo,
	}
}

func pick(rec record.Record, key string, valid map[string]struct{}, def string) string {
	v, ok := rec.Value(key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	if _, member := valid[s]; member {
		return s
	}
	return def
}

// pickLevel also accepts a bare number, since levels are stored as integers upstream.
func pickLevel(rec record.Record, def string) string {
	v, ok := rec.Value("level")
	if !ok {
		return def
	}
	s, ok := record.Scalar(v)
	if !ok {
		return def
	}
	if _, member := validLevel[s]; member {
		return s
	}
	return def
}

func text(rec record.Record, key string) string {
	v, ok := rec.Value(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func idOrAll(rec record.Record, key string) string {
	v, ok := rec.Value(key)
	if !ok {
		return All
	}
	s, ok := record.Scalar(v)
	if !ok || s == "" || s == All {
		return All
	}
	return s
}

func set[T ~string](values []T) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[string(v)] = struct{}{}
	}
	return out
}

func levelSet(levels []domain.Level) map[string]struct{} {
	out := make(map[string]struct{}, len(levels))
	for _, l := range levels {
		out[l.String()] = struct{}{}
	}
	return out
}

func withAll(values map[string]struct{}) map[string]struct{} {
	values[All] = struct{}{}
	return values
}
