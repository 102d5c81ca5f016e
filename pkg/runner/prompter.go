// Package runner presents question flows through a Prompter and collects
// the answers into question.Inputs.
package runner

import (
	"context"
	"errors"

	"github.com/teamsfx/teamsapp-cli/pkg/question"
)

var (
	// ErrAborted is returned when the user or the context cancels a prompt.
	ErrAborted = errors.New("prompt aborted")
	// ErrNoOptions is returned for a single-select question with nothing to pick.
	ErrNoOptions = errors.New("no options available")
	// ErrNotInteractive is returned when an interactive prompter has no terminal.
	ErrNotInteractive = errors.New("input is not a terminal")
	// ErrTooManyAttempts is returned once a question has been rejected MaxAttempts times.
	ErrTooManyAttempts = errors.New("too many invalid answers")
	// ErrInvalidAnswer is returned when a pre-seeded answer does not pass validation.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrNoAnswer is returned by ScriptedPrompter when it runs out of answers.
	ErrNoAnswer = errors.New("no scripted answer")
)

// PromptSpec describes one presentation of a question.
type PromptSpec struct {
	Name        question.Name
	Type        question.NodeType
	Title       string
	Placeholder string
	Default     string
	// Attempt counts presentations of this question, starting at 1.
	Attempt int
}

// Prompter asks the user for answers. Implementations return ErrAborted
// (possibly wrapped) when the user cancels.
type Prompter interface {
	// Input reads free text.
	Input(ctx context.Context, spec PromptSpec) (string, error)
	// Select returns the Key of the chosen option.
	Select(ctx context.Context, spec PromptSpec, options question.StaticOptions) (string, error)
	// Path reads a folder or file path.
	Path(ctx context.Context, spec PromptSpec) (string, error)
	// Reject shows why the previous answer was refused.
	Reject(spec PromptSpec, message string)
}

func specFor(q question.Question, attempt int) PromptSpec {
	return PromptSpec{
		Name:        q.Name,
		Type:        q.Type,
		Title:       q.Title,
		Placeholder: q.Placeholder,
		Default:     q.Default,
		Attempt:     attempt,
	}
}
