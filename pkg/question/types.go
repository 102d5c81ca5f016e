// Package question defines the declarative schema of the project wizard:
// question definitions, option catalogs, validators and dynamic option
// resolvers.
package question

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NodeType is the kind of input a question asks for.
type NodeType string

const (
	NodeText         NodeType = "text"
	NodeSingleSelect NodeType = "singleSelect"
	NodeFolder       NodeType = "folder"
	NodeFile         NodeType = "file"
)

// Valid reports whether t is a known node type.
func (t NodeType) Valid() bool {
	switch t {
	case NodeText, NodeSingleSelect, NodeFolder, NodeFile:
		return true
	default:
		return false
	}
}

// OptionItem is one selectable catalog entry. Data is an opaque payload
// (for samples, the archive URL) passed through to downstream consumers.
type OptionItem struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Data   string `json:"data,omitempty" yaml:"data,omitempty"`
}

// Option is either a plain string choice or an OptionItem.
type Option struct {
	Text string
	Item *OptionItem
}

// StringOption creates a plain string option.
func StringOption(s string) Option {
	return Option{Text: s}
}

// ItemOption creates an option backed by a catalog entry.
func ItemOption(item OptionItem) Option {
	return Option{Item: &item}
}

// Key returns the value stored in Inputs when the option is chosen.
func (o Option) Key() string {
	if o.Item != nil {
		return o.Item.ID
	}
	return o.Text
}

// Label returns the text shown to the user.
func (o Option) Label() string {
	if o.Item != nil {
		return o.Item.Label
	}
	return o.Text
}

// MarshalYAML encodes string options as scalars and items as mappings.
func (o Option) MarshalYAML() (interface{}, error) {
	if o.Item != nil {
		return o.Item, nil
	}
	return o.Text, nil
}

// UnmarshalYAML accepts either a scalar or an OptionItem mapping.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*o = Option{Text: node.Value}
		return nil
	case yaml.MappingNode:
		var item OptionItem
		if err := node.Decode(&item); err != nil {
			return err
		}
		*o = Option{Item: &item}
		return nil
	default:
		return fmt.Errorf("option at line %d: expected string or mapping", node.Line)
	}
}

// MarshalJSON mirrors MarshalYAML.
func (o Option) MarshalJSON() ([]byte, error) {
	if o.Item != nil {
		return json.Marshal(o.Item)
	}
	return json.Marshal(o.Text)
}

// UnmarshalJSON mirrors UnmarshalYAML.
func (o *Option) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var item OptionItem
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*o = Option{Item: &item}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("option: expected string or object: %w", err)
	}
	*o = Option{Text: s}
	return nil
}

// StaticOptions is a fixed list of choices.
type StaticOptions []Option

// Strings builds StaticOptions from plain strings.
func Strings(values ...string) StaticOptions {
	opts := make(StaticOptions, len(values))
	for i, v := range values {
		opts[i] = StringOption(v)
	}
	return opts
}

// Items builds StaticOptions from catalog entries.
func Items(items ...OptionItem) StaticOptions {
	opts := make(StaticOptions, len(items))
	for i, item := range items {
		opts[i] = ItemOption(item)
	}
	return opts
}

// Find returns the option whose key matches.
func (s StaticOptions) Find(key string) (Option, bool) {
	for _, o := range s {
		if o.Key() == key {
			return o, true
		}
	}
	return Option{}, false
}

// Keys returns the key of every option.
func (s StaticOptions) Keys() []string {
	keys := make([]string, len(s))
	for i, o := range s {
		keys[i] = o.Key()
	}
	return keys
}

// Clone returns a deep copy so callers cannot mutate shared definitions.
func (s StaticOptions) Clone() StaticOptions {
	if s == nil {
		return nil
	}
	out := make(StaticOptions, len(s))
	for i, o := range s {
		if o.Item != nil {
			item := *o.Item
			o.Item = &item
		}
		out[i] = o
	}
	return out
}

// Question is a single wizard prompt. Validation and DynamicOptions hold
// names resolved through a Registry rather than functions, so a Question is
// plain data that can be encoded, compared and stored.
type Question struct {
	Type             NodeType      `json:"type" yaml:"type"`
	Name             Name          `json:"name" yaml:"name"`
	Title            string        `json:"title" yaml:"title"`
	Default          string        `json:"default,omitempty" yaml:"default,omitempty"`
	Placeholder      string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	StaticOptions    StaticOptions `json:"staticOptions,omitempty" yaml:"staticOptions,omitempty"`
	DynamicOptions   string        `json:"dynamicOptions,omitempty" yaml:"dynamicOptions,omitempty"`
	Validation       string        `json:"validation,omitempty" yaml:"validation,omitempty"`
	SkipSingleOption bool          `json:"skipSingleOption,omitempty" yaml:"skipSingleOption,omitempty"`
	ReturnObject     bool          `json:"returnObject,omitempty" yaml:"returnObject,omitempty"`
}

// Condition gates a step on a previous answer.
type Condition struct {
	Name   Name   `json:"name" yaml:"name"`
	Equals string `json:"equals" yaml:"equals"`
}

// Holds reports whether the condition is satisfied by inputs.
func (c Condition) Holds(inputs Inputs) bool {
	return inputs.String(c.Name) == c.Equals
}

// Step is a question placed in a flow, optionally conditional.
type Step struct {
	Question `yaml:",inline"`
	When     *Condition `json:"when,omitempty" yaml:"when,omitempty"`
}

// Applies reports whether the step should be presented given inputs.
func (s Step) Applies(inputs Inputs) bool {
	return s.When == nil || s.When.Holds(inputs)
}
