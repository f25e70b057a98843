package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Default display layouts used when the configuration does not override them
const (
	DefaultDateLayout = "2006-01-02"
	DefaultTimeLayout = "15:04"
)

var (
	inputDateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "02.01.2006"}
	inputTimeLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM"}
)

// ErrEventDateRequired is returned when event metadata is supplied without a date.
var ErrEventDateRequired = errors.New("event date is required")

// Event holds the per-event values injected into every record when the
// roster itself carries no Date/From/To columns.
type Event struct {
	Date string
	From string
	To   string
}

// NewEvent validates raw user input and renders it with the given display layouts.
// From and To may be empty; when both are set To must not precede From.
func NewEvent(date, from, to, dateLayout, timeLayout string) (Event, error) {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return Event{}, ErrEventDateRequired
	}
	d, err := parseAny(inputDateLayouts, date)
	if err != nil {
		return Event{}, fmt.Errorf("invalid event date %q: %w", date, err)
	}

	ev := Event{Date: d.Format(dateLayout)}

	var start, end time.Time
	hasStart, hasEnd := false, false
	if from = strings.TrimSpace(from); from != "" {
		if start, err = parseAny(inputTimeLayouts, from); err != nil {
			return Event{}, fmt.Errorf("invalid start time %q: %w", from, err)
		}
		ev.From = start.Format(timeLayout)
		hasStart = true
	}
	if to = strings.TrimSpace(to); to != "" {
		if end, err = parseAny(inputTimeLayouts, to); err != nil {
			return Event{}, fmt.Errorf("invalid end time %q: %w", to, err)
		}
		ev.To = end.Format(timeLayout)
		hasEnd = true
	}

	if hasStart && hasEnd && end.Before(start) {
		return Event{}, fmt.Errorf("end time %s is before start time %s", ev.To, ev.From)
	}

	return ev, nil
}

// ApplyEvent returns a copy of records with Date, From and To replaced by the event values.
func ApplyEvent(records []Record, ev Event) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.Date = ev.Date
		r.From = ev.From
		r.To = ev.To
		out[i] = r
	}
	return out
}

func parseAny(layouts []string, value string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
