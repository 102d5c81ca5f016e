package question

import "context"

// ResolverFunc computes the option list for a question at presentation
// time. A nil result means "no override": the static options are used.
type ResolverFunc func(ctx context.Context, prior Inputs) (StaticOptions, error)

// ResolveDefaultEnv always offers the single "default" environment.
func ResolveDefaultEnv(_ context.Context, _ Inputs) (StaticOptions, error) {
	return Strings("default"), nil
}

// ResolveNone never overrides the static options.
func ResolveNone(_ context.Context, _ Inputs) (StaticOptions, error) {
	return nil, nil
}
