package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the seed file format: reference data plus tasks that
// point at it by ref. Refs are local to the file.
type ImportSchema struct {
	Projects  []ProjectImport  `json:"projects" yaml:"projects"`
	Employees []EmployeeImport `json:"employees" yaml:"employees"`
	Tasks     []TaskImport     `json:"tasks" yaml:"tasks"`
}

type ProjectImport struct {
	Ref         string `json:"ref" yaml:"ref"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type EmployeeImport struct {
	Ref        string `json:"ref" yaml:"ref"`
	LastName   string `json:"last_name" yaml:"last_name"`
	FirstName  string `json:"first_name" yaml:"first_name"`
	Patronymic string `json:"patronymic,omitempty" yaml:"patronymic,omitempty"`
	Position   string `json:"position,omitempty" yaml:"position,omitempty"`
}

type TaskImport struct {
	Name          string `json:"name" yaml:"name"`
	ProjectRef    string `json:"project_ref" yaml:"project_ref"`
	EmployeeRef   string `json:"employee_ref" yaml:"employee_ref"`
	Status        string `json:"status,omitempty" yaml:"status,omitempty"` // defaults to "new"
	RequiredHours int    `json:"required_hours" yaml:"required_hours"`
	StartDate     string `json:"start_date" yaml:"start_date"`
	EndDate       string `json:"end_date" yaml:"end_date"`
}

// LoadImportSchema reads a seed file. Files ending in .json are parsed as
// JSON; anything else as YAML.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

func ParseJSON(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

func ParseYAML(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
