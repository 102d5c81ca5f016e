package question

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Names under which the built-in behaviour is registered.
const (
	ValidatorAppName   = "app-name"
	ResolverEnvDefault = "env-default"
	ResolverNone       = "none"
)

var (
	ErrUnknownValidator = errors.New("unknown validator")
	ErrUnknownResolver  = errors.New("unknown option resolver")
	ErrDuplicate        = errors.New("already registered")
)

// Registry maps the names referenced by questions to the functions that
// implement them.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]ValidatorFunc
	resolvers  map[string]ResolverFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		validators: make(map[string]ValidatorFunc),
		resolvers:  make(map[string]ResolverFunc),
	}
}

// DefaultRegistry creates a registry holding the built-in validators and
// resolvers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.validators[ValidatorAppName] = ValidateAppName
	r.resolvers[ResolverEnvDefault] = ResolveDefaultEnv
	r.resolvers[ResolverNone] = ResolveNone
	return r
}

// RegisterValidator adds a validator under name.
func (r *Registry) RegisterValidator(name string, fn ValidatorFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("register validator: name and function are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.validators[name]; ok {
		return fmt.Errorf("validator %q: %w", name, ErrDuplicate)
	}
	r.validators[name] = fn
	return nil
}

// RegisterResolver adds an option resolver under name.
func (r *Registry) RegisterResolver(name string, fn ResolverFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("register resolver: name and function are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resolvers[name]; ok {
		return fmt.Errorf("resolver %q: %w", name, ErrDuplicate)
	}
	r.resolvers[name] = fn
	return nil
}

// Validator returns the validator registered under name.
func (r *Registry) Validator(name string) (ValidatorFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.validators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
	return fn, nil
}

// Resolver returns the option resolver registered under name.
func (r *Registry) Resolver(name string) (ResolverFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResolver, name)
	}
	return fn, nil
}

// ValidatorNames lists registered validators in sorted order.
func (r *Registry) ValidatorNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolverNames lists registered resolvers in sorted order.
func (r *Registry) ResolverNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check verifies that q is well formed and every name it references is
// registered.
func (r *Registry) Check(q Question) error {
	if !q.Name.Valid() {
		return fmt.Errorf("question %q: unknown name", q.Name)
	}
	if !q.Type.Valid() {
		return fmt.Errorf("question %q: unknown type %q", q.Name, q.Type)
	}
	if q.Type == NodeSingleSelect && len(q.StaticOptions) == 0 && q.DynamicOptions == "" {
		return fmt.Errorf("question %q: single select needs static or dynamic options", q.Name)
	}
	if q.Validation != "" {
		if _, err := r.Validator(q.Validation); err != nil {
			return fmt.Errorf("question %q: %w", q.Name, err)
		}
	}
	if q.DynamicOptions != "" {
		if _, err := r.Resolver(q.DynamicOptions); err != nil {
			return fmt.Errorf("question %q: %w", q.Name, err)
		}
	}
	return nil
}
