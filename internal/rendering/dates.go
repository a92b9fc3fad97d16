package rendering

import (
	"strconv"
	"strings"
)

var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// PresentMarker replaces the end date of entries flagged as current.
const PresentMarker = "Present"

// FormatDate renders a "YYYY-MM" string as "Jun 2023". Empty input renders
// empty; input that does not parse is returned unchanged.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	parts := strings.Split(date, "-")
	if len(parts) < 2 || parts[0] == "" {
		return date
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return date
	}
	return monthAbbrev[month-1] + " " + parts[0]
}

// FormatDuration renders "{start} - {end}", with PresentMarker as the end
// when current is set regardless of the stored end date.
func FormatDuration(start, end string, current bool) string {
	if current {
		return FormatDate(start) + " - " + PresentMarker
	}
	return FormatDate(start) + " - " + FormatDate(end)
}
