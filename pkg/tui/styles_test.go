package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme(t *testing.T) {
	theme := Theme()
	assert.NotNil(t, theme)

	// Verify theme has customized focused styles
	assert.NotNil(t, theme.Focused)
	assert.NotNil(t, theme.Focused.Title)
	assert.NotNil(t, theme.Focused.SelectedOption)
}

func TestStyles(t *testing.T) {
	for name, render := range map[string]func(...string) string{
		"Title":    TitleStyle.Render,
		"Subtitle": SubtitleStyle.Render,
		"Success":  SuccessStyle.Render,
		"Error":    ErrorStyle.Render,
		"Warning":  WarningStyle.Render,
		"Info":     InfoStyle.Render,
	} {
		out := render(name)
		assert.Contains(t, out, name)
	}
}

func TestStyledMessages(t *testing.T) {
	assert.Contains(t, Error("bad name"), "bad name")
	assert.Contains(t, Warning("careful"), "careful")
	assert.Contains(t, Success("done"), "done")
}
