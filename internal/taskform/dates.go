package taskform

import (
	"strings"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
)

// DateLayout is the fixed day/month/year format used on every form.
const DateLayout = "02/01/2006"

// ParseDate parses a form date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// FormatDate renders t in the form's date format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day truncates t to its calendar day in t's own location, returned as
// midnight UTC so it compares equal to parsed form dates.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultEndDate is the end date suggested for a new task: today plus the
// configured number of days.
func DefaultEndDate(today time.Time, s domain.Settings) time.Time {
	return Day(today).AddDate(0, 0, s.MaxDays)
}
