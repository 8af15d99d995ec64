// Package history rebuilds a request's chronological timeline from the
// several partial representations the backend may send.
package history

import (
	"sort"
	"time"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/record"
)

var (
	statusMapAliases = []string{"status_history", "status_timestamps", "status_dates"}
	creationKeys     = []string{"created_at", "requested_at"}
	actorNameAliases = []string{"full_name", "name", "username"}
	actorIDAliases   = []string{"id", "user_id"}
	noteAliases      = []string{"note", "comment"}
)

// Options tunes reconstruction.
type Options struct {
	// CollapseDuplicates drops an entry whose label and timestamp equal an
	// earlier one. Off by default: duplicates from different sources are kept.
	CollapseDuplicates bool
}

// Reconstruct builds the timeline of rec with default options.
func Reconstruct(rec record.Record) []domain.TimelineEntry {
	return ReconstructWithOptions(rec, Options{})
}

// ReconstructWithOptions merges the creation time, the status->timestamp map,
// the named stage timestamps and the explicit history log into one list
// ordered by time. Entries without a usable timestamp are dropped. Each
// entry's duration runs until the next entry; the last one stays open.
func ReconstructWithOptions(rec record.Record, opts Options) []domain.TimelineEntry {
	entries := make([]domain.TimelineEntry, 0)
	if rec == nil {
		return entries
	}

	entries = appendCreation(entries, rec)
	entries = appendStatusMap(entries, rec)
	entries = appendNamedTimestamps(entries, rec)
	entries = appendExplicitHistory(entries, rec)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
	if opts.CollapseDuplicates {
		entries = collapse(entries)
	}
	applyDurations(entries)
	return entries
}

func appendCreation(entries []domain.TimelineEntry, rec record.Record) []domain.TimelineEntry {
	var earliest time.Time
	for _, key := range creationKeys {
		if at, ok := rec.Time(key); ok && (earliest.IsZero() || at.Before(earliest)) {
			earliest = at
		}
	}
	if earliest.IsZero() {
		return entries
	}
	return append(entries, domain.TimelineEntry{At: earliest, To: domain.CreatedLabel})
}

// appendStatusMap walks the map in key order; JSON object order is not
// preserved by decoding, and ties must still sort the same way every time.
func appendStatusMap(entries []domain.TimelineEntry, rec record.Record) []domain.TimelineEntry {
	statusMap, ok := rec.Map(statusMapAliases...)
	if !ok {
		return entries
	}
	keys := make([]string, 0, len(statusMap))
	for key := range statusMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if at, ok := statusMap.Time(key); ok {
			entries = append(entries, domain.TimelineEntry{At: at, To: NormalizeLabel(key)})
		}
	}
	return entries
}

func appendNamedTimestamps(entries []domain.TimelineEntry, rec record.Record) []domain.TimelineEntry {
	for _, field := range namedTimestamps {
		if at, ok := rec.Time(field.key); ok {
			entries = append(entries, domain.TimelineEntry{At: at, To: field.label})
		}
	}
	return entries
}

func appendExplicitHistory(entries []domain.TimelineEntry, rec record.Record) []domain.TimelineEntry {
	for _, item := range rec.List("history") {
		raw, ok := record.FromAny(item)
		if !ok {
			continue
		}
		at, ok := raw.Time("at")
		if !ok {
			continue
		}
		entry := domain.TimelineEntry{At: at}
		if to, ok := raw.String("to"); ok {
			entry.To = NormalizeLabel(to)
		}
		if from, ok := raw.String("from"); ok {
			label := NormalizeLabel(from)
			entry.From = &label
		}
		entry.By = actorOf(raw)
		if note, ok := raw.String(noteAliases...); ok {
			entry.Note = &note
		}
		entries = append(entries, entry)
	}
	return entries
}

// actorOf reads "by" as a plain id/name or as a nested user object.
func actorOf(raw record.Record) *string {
	v, ok := raw.Value("by")
	if !ok {
		return nil
	}
	if user, ok := record.FromAny(v); ok {
		if name, ok := user.String(actorNameAliases...); ok {
			return &name
		}
		if id, ok := user.ID(actorIDAliases...); ok {
			return &id
		}
		return nil
	}
	if s, ok := record.Scalar(v); ok && s != "" {
		return &s
	}
	return nil
}

func collapse(entries []domain.TimelineEntry) []domain.TimelineEntry {
	type key struct {
		at int64
		to string
	}
	seen := make(map[key]struct{}, len(entries))
	out := entries[:0]
	for _, entry := range entries {
		k := key{at: entry.At.UnixNano(), to: entry.To}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, entry)
	}
	return out
}

func applyDurations(entries []domain.TimelineEntry) {
	for i := range entries {
		if i == len(entries)-1 {
			entries[i].DurationMs = nil
			entries[i].DurationLabel = nil
			return
		}
		ms := entries[i+1].At.Sub(entries[i].At).Milliseconds()
		entries[i].DurationMs = &ms
		if label, ok := FormatDuration(ms); ok {
			entries[i].DurationLabel = &label
		}
	}
}
