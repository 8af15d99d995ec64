package domain

import "time"

// CreatedLabel marks the synthetic first entry of every timeline.
const CreatedLabel = "Creado / Solicitado"

// TimelineEntry is one step of a reconstructed request history.
type TimelineEntry struct {
	At            time.Time `json:"at"`
	From          *string   `json:"from"`
	To            string    `json:"to"`
	By            *string   `json:"by"`
	Note          *string   `json:"note"`
	DurationMs    *int64    `json:"durationMs"`
	DurationLabel *string   `json:"durationLabel"`
}
