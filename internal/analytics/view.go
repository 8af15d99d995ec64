package analytics

import (
	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/record"
)

var (
	allTimeDatasets = []string{"all_time_productivity", "productivity_all", "productivity_total", "all_productivity"}
	periodDatasets  = []string{"productivity_by_tech", "productivity"}
)

// PickRows selects the productivity dataset of payload. For PeriodAll the
// all-time sets are tried first; the first non-empty array wins.
func PickRows(payload record.Record, period Period) []record.Record {
	var candidates []string
	if period == PeriodAll {
		candidates = append(candidates, allTimeDatasets...)
	}
	candidates = append(candidates, periodDatasets...)
	for _, key := range candidates {
		if items := payload.List(key); len(items) > 0 {
			return record.ListFromAny(items)
		}
	}
	return []record.Record{}
}

// View is everything the productivity screen renders from one payload.
type View struct {
	Normalized []domain.ProductivityRow `json:"normalized"`
	Filtered   []domain.ProductivityRow `json:"filtered"`
	Global     domain.GlobalMetrics     `json:"global"`
	Ranking    []domain.RankedRow       `json:"ranking"`
}

// BuildView runs the whole pipeline over payload, which is either a bare row
// array or an analytics object holding one. The ranking covers every
// technician; totals cover the selection. Team totals carried by the payload
// are only trusted when nothing is filtered out.
func BuildView(payload any, sel Selection, period Period) View {
	var rows []record.Record
	source, isObject := record.FromAny(payload)
	switch v := payload.(type) {
	case []any:
		rows = record.ListFromAny(v)
	case []record.Record:
		rows = v
	default:
		if isObject {
			rows = PickRows(source, period)
		}
	}

	normalized := Normalize(rows)
	filtered := Filter(normalized, sel)
	global := Aggregate(filtered)
	if isObject && sel.Unfiltered() {
		global = ApplySourceTotals(global, source)
	}
	return View{
		Normalized: normalized,
		Filtered:   filtered,
		Global:     global,
		Ranking:    Rank(normalized),
	}
}
