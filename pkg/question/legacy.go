package question

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// legacyFolderName is the misspelt folder key used by version 1 documents.
const legacyFolderName Name = "foler"

// legacySchema is the version 1 document layout: the option list was
// called "option" and the folder question was keyed "foler".
type legacySchema struct {
	Version   int          `yaml:"version"`
	Questions []legacyStep `yaml:"questions"`
}

type legacyStep struct {
	Type             NodeType      `yaml:"type"`
	Name             Name          `yaml:"name"`
	Title            string        `yaml:"title"`
	Default          string        `yaml:"default,omitempty"`
	Placeholder      string        `yaml:"placeholder,omitempty"`
	Option           StaticOptions `yaml:"option,omitempty"`
	DynamicOptions   string        `yaml:"dynamicOptions,omitempty"`
	Validation       string        `yaml:"validation,omitempty"`
	SkipSingleOption bool          `yaml:"skipSingleOption,omitempty"`
	ReturnObject     bool          `yaml:"returnObject,omitempty"`
	When             *Condition    `yaml:"when,omitempty"`
}

func upgradeName(n Name) Name {
	if n == legacyFolderName {
		return Folder
	}
	return n
}

// upgradeLegacy converts a version 1 document into the current layout.
func upgradeLegacy(data []byte) (Schema, error) {
	var old legacySchema
	if err := yaml.Unmarshal(data, &old); err != nil {
		return Schema{}, fmt.Errorf("failed to parse legacy schema: %w", err)
	}

	s := NewSchema(make([]Step, 0, len(old.Questions)))
	for _, q := range old.Questions {
		step := Step{
			Question: Question{
				Type:             q.Type,
				Name:             upgradeName(q.Name),
				Title:            q.Title,
				Default:          q.Default,
				Placeholder:      q.Placeholder,
				StaticOptions:    q.Option,
				DynamicOptions:   q.DynamicOptions,
				Validation:       q.Validation,
				SkipSingleOption: q.SkipSingleOption,
				ReturnObject:     q.ReturnObject,
			},
		}
		if q.When != nil {
			step.When = &Condition{Name: upgradeName(q.When.Name), Equals: q.When.Equals}
		}
		s.Questions = append(s.Questions, step)
	}
	return s, nil
}
