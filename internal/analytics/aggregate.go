package analytics

import (
	"sort"
	"strings"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/record"
)

// All disables a selection dimension.
const All = "all"

// Selection narrows rows to one technician and/or department.
type Selection struct {
	Technician string `json:"technician"`
	Department string `json:"department"`
}

func (s Selection) technician() string {
	if strings.TrimSpace(s.Technician) == "" {
		return All
	}
	return strings.TrimSpace(s.Technician)
}

func (s Selection) department() string {
	if strings.TrimSpace(s.Department) == "" {
		return All
	}
	return strings.TrimSpace(s.Department)
}

// Unfiltered reports whether s keeps every row.
func (s Selection) Unfiltered() bool {
	return s.technician() == All && s.department() == All
}

// Filter keeps the rows matching sel. Departments compare case-insensitively.
func Filter(rows []domain.ProductivityRow, sel Selection) []domain.ProductivityRow {
	tech, dept := sel.technician(), sel.department()
	out := make([]domain.ProductivityRow, 0, len(rows))
	for _, row := range rows {
		if tech != All && row.UserID != tech {
			continue
		}
		if dept != All && (row.Department == "" || !strings.EqualFold(row.Department, dept)) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Aggregate sums the counts of rows and averages them per technician.
func Aggregate(rows []domain.ProductivityRow) domain.GlobalMetrics {
	var m domain.GlobalMetrics
	for _, row := range rows {
		m.Assigned += row.Assigned
		m.InProgress += row.InProgress
		m.InReview += row.InReview
		m.Finished += row.Finished
		m.Pending += row.Pending
	}
	m.Active = m.InProgress + m.InReview
	m.TechnicianCount = len(rows)
	if m.TechnicianCount > 0 {
		m.AveragePerTech = float64(m.Assigned) / float64(m.TechnicianCount)
		m.AverageFinishedPerTech = float64(m.Finished) / float64(m.TechnicianCount)
	}
	return m
}

// sourceTotals are the top-level counters some payloads carry for the whole team.
var sourceTotals = []struct {
	key   string
	apply func(*domain.GlobalMetrics, int)
}{
	{"assigned", func(m *domain.GlobalMetrics, n int) { m.Assigned = n }},
	{"progress_now", func(m *domain.GlobalMetrics, n int) { m.InProgress = n }},
	{"in_review", func(m *domain.GlobalMetrics, n int) { m.InReview = n }},
	{"finished", func(m *domain.GlobalMetrics, n int) { m.Finished = n }},
	{"pending_now", func(m *domain.GlobalMetrics, n int) { m.Pending = n }},
}

// ApplySourceTotals replaces summed counts with the payload's own team totals
// where present. Averages and the technician count stay row based.
func ApplySourceTotals(m domain.GlobalMetrics, source record.Record) domain.GlobalMetrics {
	for _, total := range sourceTotals {
		if n, ok := source.Int(total.key); ok {
			total.apply(&m, n)
		}
	}
	m.Active = m.InProgress + m.InReview
	return m
}

// Rank orders rows by finished, then assigned, both descending. Full ties
// keep their input order. Positions are 1-based.
func Rank(rows []domain.ProductivityRow) []domain.RankedRow {
	sorted := make([]domain.ProductivityRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Finished != sorted[j].Finished {
			return sorted[i].Finished > sorted[j].Finished
		}
		return sorted[i].Assigned > sorted[j].Assigned
	})

	ranked := make([]domain.RankedRow, 0, len(sorted))
	for i, row := range sorted {
		ranked = append(ranked, domain.RankedRow{ProductivityRow: row, Position: i + 1})
	}
	return ranked
}
