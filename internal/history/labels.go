package history

import (
	"strings"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/record"
)

const (
	labelRequested = "Solicitado"
	labelCreated   = "Creado"
	labelAssigned  = "Asignado"
	labelClosed    = "Cerrada"
)

// statusLabels maps folded keys (see record.FoldKey) to timeline labels.
var statusLabels = map[string]string{
	"pending":     string(domain.StatusPending),
	"pendiente":   string(domain.StatusPending),
	"pendientes":  string(domain.StatusPending),
	"requested":   labelRequested,
	"solicitado":  labelRequested,
	"created":     labelCreated,
	"creado":      labelCreated,
	"assigned":    labelAssigned,
	"asignado":    labelAssigned,
	"in progress": string(domain.StatusInProgress),
	"inprogress":  string(domain.StatusInProgress),
	"en progreso": string(domain.StatusInProgress),
	"progress":    string(domain.StatusInProgress),
	"progreso":    string(domain.StatusInProgress),
	"in review":   string(domain.StatusInReview),
	"inreview":    string(domain.StatusInReview),
	"en revision": string(domain.StatusInReview),
	"review":      string(domain.StatusInReview),
	"revision":    string(domain.StatusInReview),
	"finished":    string(domain.StatusFinished),
	"finalizada":  string(domain.StatusFinished),
	"finalizado":  string(domain.StatusFinished),
	"done":        string(domain.StatusFinished),
	"closed":      labelClosed,
	"cerrada":     labelClosed,
	"rejected":    string(domain.StatusRejected),
	"rechazada":   string(domain.StatusRejected),
}

// namedTimestamps lists the per-stage timestamp fields in the order they are collected.
var namedTimestamps = []struct {
	key   string
	label string
}{
	{key: "assigned_at", label: labelAssigned},
	{key: "in_progress_at", label: string(domain.StatusInProgress)},
	{key: "in_review_at", label: string(domain.StatusInReview)},
	{key: "finished_at", label: string(domain.StatusFinished)},
	{key: "rejected_at", label: string(domain.StatusRejected)},
	{key: "closed_at", label: labelClosed},
}

// NormalizeLabel maps any known spelling of a status to its canonical label.
// Unknown labels are returned trimmed.
func NormalizeLabel(raw string) string {
	if label, ok := statusLabels[record.FoldKey(raw)]; ok {
		return label
	}
	return strings.TrimSpace(raw)
}
