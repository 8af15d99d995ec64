package analytics

import (
	"net/url"
	"time"
)

// Period is the analytics time window.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod falls back to PeriodAll for anything unknown.
func ParsePeriod(raw string) Period {
	switch p := Period(raw); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p
	}
	return PeriodAll
}

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// PeriodQuery builds the backend query for p. Windows end at the start of
// now's day and reach back one day, week or month.
func PeriodQuery(p Period, now time.Time) url.Values {
	params := url.Values{}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var name string
	var start time.Time
	switch p {
	case PeriodDay:
		name, start = "daily", today.AddDate(0, 0, -1)
	case PeriodWeek:
		name, start = "weekly", today.AddDate(0, 0, -7)
	case PeriodMonth:
		name, start = "monthly", subMonth(today)
	default:
		params.Set("range", "all")
		return params
	}
	params.Set("period", name)
	params.Set("start_date", start.UTC().Format(isoMillis))
	params.Set("end_date", today.UTC().Format(isoMillis))
	return params
}

// subMonth steps back one calendar month, clamping to the last day of the
// shorter month (March 31 -> February 28/29).
func subMonth(t time.Time) time.Time {
	firstOfPrev := time.Date(t.Year(), t.Month()-1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfPrev.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfPrev.Year(), firstOfPrev.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
