package question

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the version written by EncodeSchema.
const SchemaVersion = 2

// Schema is the serialisable form of a wizard flow.
type Schema struct {
	Version   int    `json:"version" yaml:"version"`
	Questions []Step `json:"questions" yaml:"questions"`
}

// NewSchema wraps steps in a current-version schema document.
func NewSchema(steps []Step) Schema {
	return Schema{Version: SchemaVersion, Questions: steps}
}

// EncodeSchema writes s as YAML with two-space indentation.
func EncodeSchema(s Schema) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadSchema decodes a YAML (or JSON) schema document, upgrading older
// versions, and checks every question against reg.
func LoadSchema(data []byte, reg *Registry) (Schema, error) {
	var header struct {
		Version int `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return Schema{}, fmt.Errorf("failed to parse schema: %w", err)
	}

	var s Schema
	switch {
	case header.Version > SchemaVersion:
		return Schema{}, fmt.Errorf("schema version %d is newer than supported version %d", header.Version, SchemaVersion)
	case header.Version < SchemaVersion:
		upgraded, err := upgradeLegacy(data)
		if err != nil {
			return Schema{}, err
		}
		s = upgraded
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Schema{}, fmt.Errorf("failed to parse schema: %w", err)
		}
	}

	if reg != nil {
		for _, step := range s.Questions {
			if err := reg.Check(step.Question); err != nil {
				return Schema{}, err
			}
		}
	}
	return s, nil
}
