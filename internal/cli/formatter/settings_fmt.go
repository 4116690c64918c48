package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/trainingtask/internal/domain"
)

// FormatSettings renders settings with a note on where they came from.
func FormatSettings(s domain.Settings, source string) string {
	var b strings.Builder
	b.WriteString(Header("Settings"))
	b.WriteString("\n")
	b.WriteString(KeyValues([][2]string{
		{"Server URL", s.URL},
		{"Max records", strconv.Itoa(s.MaxRecords)},
		{"Default days", strconv.Itoa(s.MaxDays)},
	}))
	if source != "" {
		b.WriteString(Dim("source: " + source))
		b.WriteString("\n")
	}
	return b.String()
}
