package runner

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/teamsfx/teamsapp-cli/pkg/logger"
	"github.com/teamsfx/teamsapp-cli/pkg/question"
	"github.com/teamsfx/teamsapp-cli/pkg/telemetry"
)

// Telemetry event names.
const (
	EventQuestion = "question"
	EventAborted  = "question-aborted"
)

// Runner walks a flow of steps and stores one answer per presented question.
type Runner struct {
	prompter    Prompter
	registry    *question.Registry
	log         *logger.Logger
	reporter    telemetry.Reporter
	maxAttempts int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for debug output.
func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithReporter sets the telemetry reporter.
func WithReporter(rep telemetry.Reporter) Option {
	return func(r *Runner) { r.reporter = rep }
}

// WithMaxAttempts bounds re-prompting after rejections. Zero means unbounded.
func WithMaxAttempts(n int) Option {
	return func(r *Runner) { r.maxAttempts = n }
}

// New creates a Runner. A nil registry means question.DefaultRegistry().
func New(p Prompter, reg *question.Registry, opts ...Option) *Runner {
	if reg == nil {
		reg = question.DefaultRegistry()
	}
	r := &Runner{
		prompter: p,
		registry: reg,
		log:      logger.Nop(),
		reporter: telemetry.NopReporter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run presents every applicable step in order. Steps whose condition does
// not hold are skipped, and any answer supplied for them up front is
// dropped. Answers already present in inputs are checked but not asked
// again. On error, inputs keeps the answers completed so far.
func (r *Runner) Run(ctx context.Context, steps []question.Step, inputs question.Inputs) error {
	settled := make(map[question.Name]bool, len(steps))
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrAborted, err)
		}
		if !step.Applies(inputs) {
			r.log.Debug("skipping question", "name", string(step.Name))
			if _, ok := inputs[step.Name]; ok && !settled[step.Name] {
				r.log.Debug("dropping answer for skipped question", "name", string(step.Name))
				delete(inputs, step.Name)
			}
			continue
		}
		if inputs.Has(step.Name) {
			value, err := r.checkSeeded(ctx, step.Question, inputs)
			if err != nil {
				return err
			}
			inputs[step.Name] = value
			settled[step.Name] = true
			continue
		}

		value, err := r.Ask(ctx, step.Question, inputs)
		if err != nil {
			return err
		}
		inputs[step.Name] = value
		settled[step.Name] = true
	}
	return nil
}

// Ask presents a single question and returns the accepted value without
// storing it. Single-select answers are the option key, or the OptionItem
// when the question sets ReturnObject.
func (r *Runner) Ask(ctx context.Context, q question.Question, inputs question.Inputs) (any, error) {
	switch q.Type {
	case question.NodeSingleSelect:
		return r.askSelect(ctx, q, inputs)
	case question.NodeText, question.NodeFolder, question.NodeFile:
		return r.askText(ctx, q, inputs)
	default:
		return nil, fmt.Errorf("question %s: unsupported type %q", q.Name, q.Type)
	}
}

func (r *Runner) askText(ctx context.Context, q question.Question, inputs question.Inputs) (any, error) {
	for attempt := 1; ; attempt++ {
		spec := specFor(q, attempt)
		r.presented(spec)

		var answer string
		var err error
		if q.Type == question.NodeText {
			answer, err = r.prompter.Input(ctx, spec)
		} else {
			answer, err = r.prompter.Path(ctx, spec)
		}
		if err != nil {
			return nil, r.promptFailed(ctx, spec, err)
		}
		if answer == "" {
			answer = q.Default
		}

		msg, err := r.validate(ctx, q, answer, inputs)
		if err != nil {
			return nil, err
		}
		if msg == "" {
			return answer, nil
		}
		if err := r.rejected(spec, msg); err != nil {
			return nil, err
		}
	}
}

func (r *Runner) askSelect(ctx context.Context, q question.Question, inputs question.Inputs) (any, error) {
	options, err := r.resolveOptions(ctx, q, inputs)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("question %s: %w", q.Name, ErrNoOptions)
	}
	if q.SkipSingleOption && len(options) == 1 {
		r.log.Debug("auto-selecting single option", "name", string(q.Name), "option", options[0].Key())
		return selectedValue(q, options[0]), nil
	}

	for attempt := 1; ; attempt++ {
		spec := specFor(q, attempt)
		r.presented(spec)

		key, err := r.prompter.Select(ctx, spec, options)
		if err != nil {
			return nil, r.promptFailed(ctx, spec, err)
		}
		if key == "" {
			key = q.Default
		}

		msg := ""
		opt, ok := options.Find(key)
		if !ok {
			msg = fmt.Sprintf("%q is not one of the available options.", key)
		} else if msg, err = r.validate(ctx, q, key, inputs); err != nil {
			return nil, err
		}
		if msg == "" {
			return selectedValue(q, opt), nil
		}
		if err := r.rejected(spec, msg); err != nil {
			return nil, err
		}
	}
}

// checkSeeded validates an answer supplied before the flow started and
// normalises it to the form Ask would have produced.
func (r *Runner) checkSeeded(ctx context.Context, q question.Question, inputs question.Inputs) (any, error) {
	answer := inputs.String(q.Name)
	r.log.Debug("using provided answer", "name", string(q.Name), "value", answer)

	if q.Type == question.NodeSingleSelect {
		options, err := r.resolveOptions(ctx, q, inputs)
		if err != nil {
			return nil, err
		}
		opt, ok := options.Find(answer)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %q is not one of %v", ErrInvalidAnswer, q.Name, answer, options.Keys())
		}
		msg, err := r.validate(ctx, q, answer, inputs)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			return nil, fmt.Errorf("%w: %s: %s", ErrInvalidAnswer, q.Name, msg)
		}
		return selectedValue(q, opt), nil
	}

	msg, err := r.validate(ctx, q, answer, inputs)
	if err != nil {
		return nil, err
	}
	if msg != "" {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidAnswer, q.Name, msg)
	}
	return inputs[q.Name], nil
}

// resolveOptions invokes the dynamic resolver, if any, once. A nil result
// keeps the static list.
func (r *Runner) resolveOptions(ctx context.Context, q question.Question, inputs question.Inputs) (question.StaticOptions, error) {
	if q.DynamicOptions == "" {
		return q.StaticOptions.Clone(), nil
	}
	resolve, err := r.registry.Resolver(q.DynamicOptions)
	if err != nil {
		return nil, fmt.Errorf("question %s: %w", q.Name, err)
	}
	options, err := resolve(ctx, inputs.Clone())
	if err != nil {
		return nil, fmt.Errorf("question %s: resolving options: %w", q.Name, err)
	}
	if options == nil {
		return q.StaticOptions.Clone(), nil
	}
	return options, nil
}

func (r *Runner) validate(ctx context.Context, q question.Question, answer string, inputs question.Inputs) (string, error) {
	if q.Validation == "" {
		return "", nil
	}
	fn, err := r.registry.Validator(q.Validation)
	if err != nil {
		return "", fmt.Errorf("question %s: %w", q.Name, err)
	}
	msg, err := fn(ctx, answer, inputs.Clone())
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		}
		return "", fmt.Errorf("question %s: %w", q.Name, err)
	}
	return msg, nil
}

func (r *Runner) presented(spec PromptSpec) {
	r.log.Debug("presenting question", "name", string(spec.Name), "type", string(spec.Type), "attempt", spec.Attempt)
	r.reporter.SendEvent(EventQuestion, map[string]string{
		"question-name": string(spec.Name),
		"question-type": string(spec.Type),
		"attempt":       strconv.Itoa(spec.Attempt),
	})
}

func (r *Runner) rejected(spec PromptSpec, msg string) error {
	r.log.Debug("answer rejected", "name", string(spec.Name), "reason", msg)
	r.prompter.Reject(spec, msg)
	if r.maxAttempts > 0 && spec.Attempt >= r.maxAttempts {
		return fmt.Errorf("question %s: %w: %s", spec.Name, ErrTooManyAttempts, msg)
	}
	return nil
}

func (r *Runner) promptFailed(ctx context.Context, spec PromptSpec, err error) error {
	if errors.Is(err, ErrAborted) || ctx.Err() != nil {
		r.reporter.SendEvent(EventAborted, map[string]string{"question-name": string(spec.Name)})
		if errors.Is(err, ErrAborted) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}
	r.reporter.SendError(EventQuestion, err, map[string]string{"question-name": string(spec.Name)})
	return fmt.Errorf("question %s: %w", spec.Name, err)
}

func selectedValue(q question.Question, opt question.Option) any {
	if q.ReturnObject && opt.Item != nil {
		return *opt.Item
	}
	return opt.Key()
}
