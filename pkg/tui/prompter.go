package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/teamsfx/teamsapp-cli/pkg/question"
	"github.com/teamsfx/teamsapp-cli/pkg/runner"
)

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// HuhPrompter implements runner.Prompter with huh forms.
type HuhPrompter struct {
	in    *os.File
	out   io.Writer
	theme *huh.Theme
}

// NewHuhPrompter returns a prompter reading from in and drawing to out.
// It fails with runner.ErrNotInteractive when in is not a terminal.
func NewHuhPrompter(in *os.File, out io.Writer) (*HuhPrompter, error) {
	if !IsTerminal(in) {
		return nil, runner.ErrNotInteractive
	}
	return &HuhPrompter{in: in, out: out, theme: Theme()}, nil
}

// Input implements runner.Prompter.
func (p *HuhPrompter) Input(ctx context.Context, spec runner.PromptSpec) (string, error) {
	value := ""
	field := huh.NewInput().
		Title(spec.Title).
		Placeholder(placeholder(spec)).
		Validate(inputValidator(spec)).
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Select implements runner.Prompter.
func (p *HuhPrompter) Select(ctx context.Context, spec runner.PromptSpec, options question.StaticOptions) (string, error) {
	value := spec.Default
	field := huh.NewSelect[string]().
		Title(spec.Title).
		Description(spec.Placeholder).
		Options(SelectOptions(options)...).
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Path implements runner.Prompter. Folder questions allow only directories.
func (p *HuhPrompter) Path(ctx context.Context, spec runner.PromptSpec) (string, error) {
	value := ""
	field := huh.NewFilePicker().
		Title(spec.Title).
		CurrentDirectory(".").
		DirAllowed(spec.Type == question.NodeFolder).
		FileAllowed(spec.Type == question.NodeFile).
		Picking(true).
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Reject implements runner.Prompter.
func (p *HuhPrompter) Reject(_ runner.PromptSpec, message string) {
	fmt.Fprintln(p.out, Error(message))
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithInput(p.in).
		WithOutput(p.out)
	return MapError(form.RunWithContext(ctx))
}

// MapError converts huh and bubbletea cancellation into runner.ErrAborted.
func MapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted),
		errors.Is(err, tea.ErrProgramKilled),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", runner.ErrAborted, err)
	default:
		return err
	}
}

// SelectOptions converts options to huh options keyed by Option.Key.
func SelectOptions(options question.StaticOptions) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label()
		if opt.Item != nil && opt.Item.Detail != "" {
			label = label + " " + SubtitleStyle.Render(opt.Item.Detail)
		}
		out[i] = huh.NewOption(label, opt.Key())
	}
	return out
}

func placeholder(spec runner.PromptSpec) string {
	if spec.Default != "" {
		return spec.Default
	}
	return spec.Placeholder
}
