package tui

import (
	"fmt"
	"strings"

	"github.com/teamsfx/teamsapp-cli/pkg/runner"
)

// validateRequired returns a validator that ensures a field is not empty.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// inputValidator checks free text inside the form. Questions with a
// default accept an empty answer; everything else is left to the
// question's own validator once the form returns.
func inputValidator(spec runner.PromptSpec) func(string) error {
	if spec.Default != "" {
		return func(string) error { return nil }
	}
	return validateRequired(spec.Title)
}
