// Package analytics turns per-technician productivity payloads into canonical
// rows, totals and a ranking.
package analytics

import (
	"math"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/record"
)

const (
	UnknownUser       = "unknown"
	UnknownName       = "Sin nombre"
	UnknownDepartment = "Sin departamento"
)

// Normalize maps every raw row to a canonical ProductivityRow.
func Normalize(rows []record.Record) []domain.ProductivityRow {
	out := make([]domain.ProductivityRow, 0, len(rows))
	for _, raw := range rows {
		out = append(out, NormalizeRow(raw))
	}
	return out
}

// NormalizeRow resolves each count from the breakdown map first, then from the
// flat alias fields, then 0. When a breakdown is present, assigned is the sum
// of the four buckets and any aggregate field is ignored as stale.
func NormalizeRow(raw record.Record) domain.ProductivityRow {
	row := domain.ProductivityRow{
		UserID:     firstID(raw, UserIDAliases, UnknownUser),
		Name:       firstString(raw, NameAliases, UnknownName),
		Department: firstString(raw, DepartmentAliases, UnknownDepartment),
	}

	breakdown := Breakdown(raw)
	row.Pending = count(raw, breakdown, BucketPending, PendingAliases)
	row.InProgress = count(raw, breakdown, BucketInProgress, InProgressAliases)
	row.InReview = count(raw, breakdown, BucketInReview, InReviewAliases)
	row.Finished = count(raw, breakdown, BucketFinished, FinishedAliases)

	statusTotal := row.Pending + row.InProgress + row.InReview + row.Finished
	switch assigned, ok := raw.Int(AssignedAliases...); {
	case len(breakdown) > 0:
		row.Assigned = statusTotal
	case ok:
		row.Assigned = assigned
	default:
		row.Assigned = statusTotal
	}
	return row
}

// Breakdown reads the first nested status map and sums its values per bucket.
// Unknown keys are ignored; non-numeric values count as 0.
func Breakdown(raw record.Record) map[Bucket]int {
	counts := map[Bucket]int{}
	source, ok := raw.Map(BreakdownAliases...)
	if !ok {
		return counts
	}
	for key, value := range source {
		bucket, known := breakdownKeys[record.FoldKey(key)]
		if !known {
			continue
		}
		n, _ := record.Number(value)
		counts[bucket] += int(math.Round(n))
	}
	return counts
}

func count(raw record.Record, breakdown map[Bucket]int, bucket Bucket, aliases []string) int {
	if n, ok := breakdown[bucket]; ok {
		return n
	}
	n, _ := raw.Int(aliases...)
	return n
}

func firstID(raw record.Record, aliases []string, fallback string) string {
	if id, ok := raw.ID(aliases...); ok {
		return id
	}
	return fallback
}

func firstString(raw record.Record, aliases []string, fallback string) string {
	if s, ok := raw.String(aliases...); ok {
		return s
	}
	return fallback
}
