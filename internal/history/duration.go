package history

import (
	"fmt"
	"math"
)

// FormatDuration renders a dwell time the way the request detail shows it.
// Non-positive durations have no label.
func FormatDuration(ms int64) (string, bool) {
	if ms <= 0 {
		return "", false
	}
	minutes := int64(math.Round(float64(ms) / 60000))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes), true
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d h %d min", hours, minutes%60), true
	}
	return fmt.Sprintf("%dd %dh", hours/24, hours%24), true
}
