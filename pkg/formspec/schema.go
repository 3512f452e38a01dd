package formspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FieldType selects the input flavour of a field.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeEmail    FieldType = "email"
	TypePassword FieldType = "password"
)

// FieldSpec declares one field. Rules and CompareWith are mutually exclusive;
// a field with neither is never invalid.
type FieldSpec struct {
	Name        string    `yaml:"name"`
	Title       string    `yaml:"title"`
	Placeholder string    `yaml:"placeholder"`
	Type        FieldType `yaml:"type"`

	TitleStyle string `yaml:"title_style"`
	InputStyle string `yaml:"input_style"`
	HintStyle  string `yaml:"hint_style"`
	ErrorColor string `yaml:"error_color"`

	// Sanitize names transforms from package sanitizer applied to the text
	// before it is validated or compared.
	Sanitize []string `yaml:"sanitize"`

	Rules       []string `yaml:"rules"`
	CompareWith string   `yaml:"compare_with"`
	// Error is the fixed hint: required with compare_with, optional otherwise.
	Error string `yaml:"error"`

	ValidationDisabled bool `yaml:"validation_disabled"`
}

// Schema is a declarative form: an ordered list of fields.
type Schema struct {
	Name   string      `yaml:"name"`
	Fields []FieldSpec `yaml:"fields"`
}

// Parse decodes and validates a YAML schema. Unknown keys are rejected.
func Parse(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data)
}

// Validate reports every structural problem of the schema at once.
func (s *Schema) Validate() error {
	if len(s.Fields) == 0 {
		return errors.Join(ErrInvalidSchema, ErrNoFields)
	}

	names := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name != "" {
			names[f.Name] = true
		}
	}

	var errs []error
	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("fields[%d]: %w", i, ErrEmptyFieldName))
			continue
		}
		if seen[f.Name] {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, ErrDuplicateField))
		}
		seen[f.Name] = true

		switch f.Type {
		case "", TypeText, TypeEmail, TypePassword:
		default:
			errs = append(errs, fmt.Errorf("%s: %w %q", f.Name, ErrUnknownFieldType, f.Type))
		}

		if _, err := sanitizer.Parse(f.Sanitize); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
		}

		if f.CompareWith != "" {
			if len(f.Rules) > 0 {
				errs = append(errs, fmt.Errorf("%s: %w", f.Name, ErrConflictingModes))
			}
			if f.CompareWith == f.Name || !names[f.CompareWith] {
				errs = append(errs, fmt.Errorf("%s: %w %q", f.Name, ErrUnknownTarget, f.CompareWith))
			}
			if f.Error == "" {
				errs = append(errs, fmt.Errorf("%s: %w", f.Name, ErrMissingCompareError))
			}
			continue
		}

		for _, expr := range f.Rules {
			if _, err := validator.ParseRule(expr); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidSchema}, errs...)...)
	}
	return nil
}

// Field returns the spec named name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
