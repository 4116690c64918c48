package domain

import (
	"fmt"
	"strings"
)

type Employee struct {
	ID         string
	LastName   string
	FirstName  string
	Patronymic string
	Position   string
}

// FullName is the display name used by pickers and form lookups:
// last, first and patronymic joined by single spaces, blanks skipped.
func (e Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.LastName, e.FirstName, e.Patronymic} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Validate checks the fields the server requires before storing an employee.
func (e *Employee) Validate() error {
	if strings.TrimSpace(e.LastName) == "" {
		return fmt.Errorf("employee last name is required")
	}
	if strings.TrimSpace(e.FirstName) == "" {
		return fmt.Errorf("employee first name is required")
	}
	return nil
}
