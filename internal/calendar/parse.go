package calendar

import (
	"bytes"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"campushub/internal/model"
)

// Parse extracts events from an ICS document. Entries that cannot be read
// (no start, unparsable dates) are skipped and counted instead of failing the feed.
// When the document as a whole is rejected, each VEVENT block is parsed on its own.
// Date-only and floating times are read as wall clock in loc; UTC and TZID times keep their instant.
func Parse(data []byte, loc *time.Location) (events []model.CalendarEvent, skipped int) {
	if loc == nil {
		loc = time.UTC
	}
	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err == nil {
		return convertAll(cal.Events(), loc)
	}

	for _, block := range splitEventBlocks(data) {
		c, err := ics.ParseCalendar(strings.NewReader(block))
		if err != nil {
			skipped++
			continue
		}
		evs, sk := convertAll(c.Events(), loc)
		events = append(events, evs...)
		skipped += sk
	}
	return events, skipped
}

func convertAll(vevents []*ics.VEvent, loc *time.Location) ([]model.CalendarEvent, int) {
	events := make([]model.CalendarEvent, 0, len(vevents))
	skipped := 0
	for _, ve := range vevents {
		ev, ok := convert(ve, loc)
		if !ok {
			skipped++
			continue
		}
		events = append(events, ev)
	}
	return events, skipped
}

func convert(ve *ics.VEvent, loc *time.Location) (model.CalendarEvent, bool) {
	start, ok := eventTime(ve.GetStartAt, ve.GetAllDayStartAt)
	if !ok {
		return model.CalendarEvent{}, false
	}

	ev := model.CalendarEvent{
		Title: "Event",
		Start: anchor(start, ve.GetProperty(ics.ComponentPropertyDtStart), loc),
	}
	if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil && strings.TrimSpace(p.Value) != "" {
		ev.Title = unescape(p.Value)
	}
	if p := ve.GetProperty(ics.ComponentPropertyLocation); p != nil && strings.TrimSpace(p.Value) != "" {
		ev.Location = unescape(p.Value)
	}
	if ve.GetProperty(ics.ComponentPropertyDtEnd) != nil {
		if end, ok := eventTime(ve.GetEndAt, ve.GetAllDayEndAt); ok {
			end = anchor(end, ve.GetProperty(ics.ComponentPropertyDtEnd), loc)
			ev.End = &end
		}
	}
	return ev, true
}

func eventTime(get, getAllDay func() (time.Time, error)) (time.Time, bool) {
	if t, err := get(); err == nil && !t.IsZero() {
		return t, true
	}
	if t, err := getAllDay(); err == nil && !t.IsZero() {
		return t, true
	}
	return time.Time{}, false
}

// anchor returns t in UTC. Values without a trailing Z or a TZID parameter carry no
// zone of their own, so their wall clock is placed in loc first.
func anchor(t time.Time, p *ics.IANAProperty, loc *time.Location) time.Time {
	if p != nil && !hasZone(p) {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	}
	return t.UTC()
}

func hasZone(p *ics.IANAProperty) bool {
	if tz, ok := p.ICalParameters[string(ics.ParameterTzid)]; ok && len(tz) > 0 {
		return true
	}
	return strings.HasSuffix(strings.ToUpper(strings.TrimSpace(p.Value)), "Z")
}

var textUnescaper = strings.NewReplacer(`\,`, ",", `\;`, ";", `\n`, "\n", `\N`, "\n", `\\`, `\`)

func unescape(s string) string {
	return textUnescaper.Replace(s)
}

// splitEventBlocks wraps every BEGIN:VEVENT..END:VEVENT block in its own VCALENDAR.
func splitEventBlocks(data []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	var blocks []string
	var cur []string
	in := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.EqualFold(trimmed, "BEGIN:VEVENT"):
			in = true
			cur = []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//campushub//block//EN", trimmed}
		case strings.EqualFold(trimmed, "END:VEVENT") && in:
			cur = append(cur, trimmed, "END:VCALENDAR")
			blocks = append(blocks, strings.Join(cur, "\r\n")+"\r\n")
			in = false
		case in:
			cur = append(cur, strings.TrimRight(line, "\r"))
		}
	}
	return blocks
}
