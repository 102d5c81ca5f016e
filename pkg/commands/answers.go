package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teamsfx/teamsapp-cli/pkg/question"
)

// ReadAnswers loads a YAML mapping of question name to answer. Unknown
// names are rejected so typos do not silently fall back to prompting.
func ReadAnswers(path string) (question.Inputs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open answers file: %w", err)
	}
	defer f.Close()
	return DecodeAnswers(f)
}

// DecodeAnswers parses an answers document from r.
func DecodeAnswers(r io.Reader) (question.Inputs, error) {
	var raw map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}

	inputs := make(question.Inputs, len(raw))
	for k, v := range raw {
		name := question.Name(k)
		if !name.Valid() {
			return nil, fmt.Errorf("unknown question %q in answers", k)
		}
		inputs[name] = v
	}
	return inputs, nil
}

// writeAnswers prints the collected inputs as YAML.
func writeAnswers(w io.Writer, inputs question.Inputs) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(inputs.Export()); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	return enc.Close()
}
