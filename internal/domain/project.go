package domain

import (
	"fmt"
	"strings"
)

type Project struct {
	ID          string
	Name        string
	Description string
}

// Validate checks the fields the server requires before storing a project.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}
