package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/trainingtask/internal/taskform"
	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for a dd/mm/yyyy date.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("31/12/2024").
		Value(value).
		Validate(validateDate)
}

func hoursInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Required hours").
		Placeholder("8").
		Value(value).
		Validate(validatePositiveInt)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter zero or a positive number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := taskform.ParseDate(s); err != nil {
		return fmt.Errorf("use DD/MM/YYYY format")
	}
	return nil
}
