package exporter

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

var invalidFileRe = regexp.MustCompile(`[\\/:*?"<>|\s]+`)

// FileName builds the download name of a report generated at t, e.g.
// "OD_List_All_Branches_20240115_093000.docx". A non-empty event date is
// embedded instead of "All_Branches".
func FileName(t time.Time, eventDate string) string {
	ts := t.Format(timestampLayout)

	eventDate = sanitizeFileName(eventDate)
	if eventDate == "" {
		return fmt.Sprintf("OD_List_All_Branches_%s.docx", ts)
	}
	return fmt.Sprintf("OD_List_%s_%s.docx", eventDate, ts)
}

func sanitizeFileName(s string) string {
	s = strings.TrimSpace(s)
	s = invalidFileRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-.")
}
