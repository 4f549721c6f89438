// internal/seeder/normalize.go
package seeder

import (
	"strings"
	"time"
)

const (
	csvDateLayout = "2/1/2006" // accepts padded and unpadded day/month
	isoDateLayout = "2006-01-02"
	csvTimeLayout = "3:04 PM"
	sqlTimeLayout = "15:04:05"
)

// NormalizeDate converts an interview date from DD/MM/YYYY to YYYY-MM-DD.
// Any parse failure yields nil, which renders as SQL NULL; it never surfaces
// as an error to the caller.
func NormalizeDate(s string) *string {
	t, err := time.Parse(csvDateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	out := t.Format(isoDateLayout)
	return &out
}

// NormalizeTime converts a 12-hour clock value like "2:30 PM" to 24-hour
// HH:MM:SS. The AM/PM suffix is matched case-insensitively. Same
// failure-to-nil policy as NormalizeDate.
func NormalizeTime(s string) *string {
	t, err := time.Parse(csvTimeLayout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return nil
	}
	out := t.Format(sqlTimeLayout)
	return &out
}
