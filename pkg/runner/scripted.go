package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/teamsfx/teamsapp-cli/pkg/question"
)

// Rejection records a message passed to Reject.
type Rejection struct {
	Name    question.Name
	Message string
}

// ScriptedPrompter answers prompts from a fixed queue. It is used for
// non-interactive runs and in tests. When the queue is empty it returns
// an empty answer if the prompt has a default, and ErrNoAnswer otherwise.
type ScriptedPrompter struct {
	// OnPrompt, if set, is called before each answer is taken.
	OnPrompt func(spec PromptSpec)

	mu         sync.Mutex
	answers    []string
	prompts    []PromptSpec
	rejections []Rejection
}

// NewScriptedPrompter returns a prompter that replays answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: append([]string(nil), answers...)}
}

// Input implements Prompter.
func (p *ScriptedPrompter) Input(ctx context.Context, spec PromptSpec) (string, error) {
	return p.next(ctx, spec)
}

// Select implements Prompter. The scripted answer may be an option key or label.
func (p *ScriptedPrompter) Select(ctx context.Context, spec PromptSpec, options question.StaticOptions) (string, error) {
	answer, err := p.next(ctx, spec)
	if err != nil {
		return "", err
	}
	if _, ok := options.Find(answer); ok {
		return answer, nil
	}
	for _, opt := range options {
		if opt.Label() == answer {
			return opt.Key(), nil
		}
	}
	return answer, nil
}

// Path implements Prompter.
func (p *ScriptedPrompter) Path(ctx context.Context, spec PromptSpec) (string, error) {
	return p.next(ctx, spec)
}

// Reject implements Prompter.
func (p *ScriptedPrompter) Reject(spec PromptSpec, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rejections = append(p.rejections, Rejection{Name: spec.Name, Message: message})
}

// Prompts returns every prompt presented so far.
func (p *ScriptedPrompter) Prompts() []PromptSpec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PromptSpec(nil), p.prompts...)
}

// Rejections returns every rejection shown so far.
func (p *ScriptedPrompter) Rejections() []Rejection {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Rejection(nil), p.rejections...)
}

// Remaining reports how many scripted answers are left.
func (p *ScriptedPrompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}

func (p *ScriptedPrompter) next(ctx context.Context, spec PromptSpec) (string, error) {
	if p.OnPrompt != nil {
		p.OnPrompt(spec)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAborted, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, spec)
	if len(p.answers) == 0 {
		if spec.Default != "" {
			return "", nil
		}
		return "", fmt.Errorf("%w for %s", ErrNoAnswer, spec.Name)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}
