package formatter

import (
	"errors"

	"github.com/alexanderramin/trainingtask/internal/taskform"
)

var fieldTitles = map[taskform.Field]string{
	taskform.FieldName:      "Name",
	taskform.FieldProject:   "Project",
	taskform.FieldEmployee:  "Employee",
	taskform.FieldStatus:    "Status",
	taskform.FieldHours:     "Hours",
	taskform.FieldStartDate: "Start date",
	taskform.FieldEndDate:   "End date",
}

// FormatError renders an error for the terminal. Form errors name the
// offending field.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var fe *taskform.FieldError
	if errors.As(err, &fe) {
		title, ok := fieldTitles[fe.Field]
		if !ok {
			title = string(fe.Field)
		}
		msg := fe.Err.Error()
		if fe.Value != "" {
			msg += " " + Dim("("+fe.Value+")")
		}
		return StyleRed.Render("✖ "+title+": ") + msg
	}
	return StyleRed.Render("✖ ") + err.Error()
}
