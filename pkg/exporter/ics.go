package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"odgen/pkg/report"
	"odgen/pkg/roster"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// Slot is one distinct event occurrence in a roster, with the groups attending it.
type Slot struct {
	Date    string
	From    string
	To      string
	Groups  []report.Group
	Members int
}

// ICSOptions controls how roster dates and times are interpreted.
type ICSOptions struct {
	DateLayout string
	TimeLayout string
	Location   *time.Location
	Now        func() time.Time
}

// Slots collects the distinct (Date, From, To) values of records in order of
// first appearance, each with its participants grouped by semester and branch.
func Slots(records []roster.Record) ([]Slot, error) {
	byKey := make(map[string][]roster.Record)
	var keys []string // first appearance order

	for _, r := range records {
		key := r.Date + "|" + r.From + "|" + r.To
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], r)
	}

	slots := make([]Slot, 0, len(keys))
	for _, key := range keys {
		members := byKey[key]
		groups, err := report.Organize(members)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{
			Date:    members[0].Date,
			From:    members[0].From,
			To:      members[0].To,
			Groups:  groups,
			Members: len(members),
		})
	}

	return slots, nil
}

// GenerateICS writes one calendar event per roster slot to w. Slots whose
// date cannot be parsed are skipped; slots without times become all-day events.
// It returns the number of events written.
func GenerateICS(records []roster.Record, w io.Writer, opts ICSOptions) (int, error) {
	if opts.DateLayout == "" {
		opts.DateLayout = roster.DefaultDateLayout
	}
	if opts.TimeLayout == "" {
		opts.TimeLayout = roster.DefaultTimeLayout
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	slots, err := Slots(records)
	if err != nil {
		return 0, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//odgen//Official Duty list//EN")

	written := 0
	for _, s := range slots {
		day, err := parseDate(s.Date, opts)
		if err != nil {
			continue // Skip malformed dates
		}

		event := cal.AddEvent(slotUID(s))
		now := opts.Now()
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)

		start, errStart := time.ParseInLocation(opts.DateLayout+" "+opts.TimeLayout, s.Date+" "+s.From, opts.Location)
		end, errEnd := time.ParseInLocation(opts.DateLayout+" "+opts.TimeLayout, s.Date+" "+s.To, opts.Location)
		if errStart == nil && errEnd == nil && !end.Before(start) {
			event.SetStartAt(start)
			event.SetEndAt(end)
		} else {
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}

		event.SetSummary(fmt.Sprintf("Official Duty (%d participants)", s.Members))
		event.SetDescription(describe(s))
		written++
	}

	if err := cal.SerializeTo(w); err != nil {
		return written, fmt.Errorf("failed to serialize calendar: %w", err)
	}
	return written, nil
}

func parseDate(v string, opts ICSOptions) (time.Time, error) {
	t, err := time.ParseInLocation(opts.DateLayout, v, opts.Location)
	if err == nil || opts.DateLayout == roster.DefaultDateLayout {
		return t, err
	}
	return time.ParseInLocation(roster.DefaultDateLayout, v, opts.Location)
}

// slotUID derives a stable UID so re-exports update rather than duplicate events.
func slotUID(s Slot) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("odgen:"+s.Date+"|"+s.From+"|"+s.To)).String()
}

func describe(s Slot) string {
	lines := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		lines = append(lines, fmt.Sprintf("%s Semester %d: %d", g.Key.Branch, g.Key.Semester, len(g.Records)))
	}
	return "Participants by branch:\n" + strings.Join(lines, "\n")
}
