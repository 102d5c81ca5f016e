package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamsfx/teamsapp-cli/pkg/runner"
)

func TestValidateRequired(t *testing.T) {
	validator := validateRequired("Application name")

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid input", "MyApp", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"with spaces", "my app", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInputValidator(t *testing.T) {
	withDefault := inputValidator(runner.PromptSpec{Title: "Environment Name", Default: "myenv"})
	assert.NoError(t, withDefault(""))

	required := inputValidator(runner.PromptSpec{Title: "Application name"})
	assert.EqualError(t, required(""), "Application name is required")
	assert.NoError(t, required("1App"), "pattern checks are left to the question validator")
}
