package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/taskform"
)

// FormatTaskList renders tasks as a table.
func FormatTaskList(tasks []domain.Task) string {
	headers := []string{"ID", "NAME", "PROJECT", "EMPLOYEE", "STATUS", "HOURS", "START", "END"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Name,
			t.Project.Name,
			t.Employee.FullName(),
			StatusPill(t.Status),
			strconv.Itoa(t.RequiredHours),
			taskform.FormatDate(t.StartDate),
			taskform.FormatDate(t.EndDate),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTask renders one task's details.
func FormatTask(t domain.Task) string {
	var b strings.Builder
	b.WriteString(Header(t.Name))
	b.WriteString("\n")
	b.WriteString(KeyValues([][2]string{
		{"ID", t.ID},
		{"Project", t.Project.Name},
		{"Employee", t.Employee.FullName()},
		{"Status", StatusPill(t.Status)},
		{"Required", Hours(t.RequiredHours)},
		{"Start", taskform.FormatDate(t.StartDate)},
		{"End", taskform.FormatDate(t.EndDate)},
		{"Duration", strconv.Itoa(t.DurationDays()) + " days"},
	}))
	return b.String()
}

func FormatProjectList(projects []domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{TruncID(p.ID), p.Name, OrBlank(p.Description)})
	}
	return RenderTable([]string{"ID", "NAME", "DESCRIPTION"}, rows)
}

func FormatEmployeeList(employees []domain.Employee) string {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{TruncID(e.ID), e.FullName(), OrBlank(e.Position)})
	}
	return RenderTable([]string{"ID", "NAME", "POSITION"}, rows)
}
