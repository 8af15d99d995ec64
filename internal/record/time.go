package record

import (
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTime reads a timestamp from an ISO-8601 string or an epoch-milliseconds
// number. Zone-less strings are read as UTC. Empty, zero and unparseable values
// report false; callers drop them instead of inventing a date.
func ParseTime(v any) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	}
	ms, ok := Number(v)
	if !ok || ms == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

// Time returns the parsed timestamp stored under key.
func (r Record) Time(key string) (time.Time, bool) {
	v, ok := r.Value(key)
	if !ok {
		return time.Time{}, false
	}
	return ParseTime(v)
}
