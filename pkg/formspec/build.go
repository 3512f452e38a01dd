package formspec

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// InputProvider supplies the input widget for a named field.
type InputProvider interface {
	Input(name string) form.Input
}

// InputFunc adapts a function to InputProvider.
type InputFunc func(name string) form.Input

func (fn InputFunc) Input(name string) form.Input { return fn(name) }

// BuildOption configures Schema.Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	inputs     InputProvider
	onChange   func()
	common     []form.Option
	perField   func(FieldSpec) []form.Option
	logger     *slog.Logger
	disableAll bool
}

// WithInputs sets the input source. By default each field gets its own form.TextInput.
func WithInputs(p InputProvider) BuildOption {
	return func(c *buildConfig) {
		if p != nil {
			c.inputs = p
		}
	}
}

// WithOnChange sets the change callback shared by every field.
func WithOnChange(fn func()) BuildOption {
	return func(c *buildConfig) { c.onChange = fn }
}

// WithFieldOptions adds options applied to every field.
func WithFieldOptions(opts ...form.Option) BuildOption {
	return func(c *buildConfig) { c.common = append(c.common, opts...) }
}

// WithPerFieldOptions adds options computed for each field spec, for example
// a presenter bound to that field's widgets.
func WithPerFieldOptions(fn func(FieldSpec) []form.Option) BuildOption {
	return func(c *buildConfig) { c.perField = fn }
}

// WithLogger sets the logger for the build and for every field.
func WithLogger(l *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithValidationDisabled disables validation on every field after setup.
func WithValidationDisabled(disabled bool) BuildOption {
	return func(c *buildConfig) { c.disableAll = disabled }
}

// Build creates the fields in declared order, configures their validation
// modes and marks the last one. The schema is validated first.
func (s *Schema) Build(opts ...BuildOption) (*Form, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cfg := &buildConfig{logger: logger.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &Form{
		name:   s.Name,
		byName: make(map[string]*form.Field, len(s.Fields)),
		inputs: make(map[string]form.Input, len(s.Fields)),
	}

	for _, spec := range s.Fields {
		var in form.Input
		if cfg.inputs != nil {
			in = cfg.inputs.Input(spec.Name)
		}
		if in == nil {
			in = &form.TextInput{}
		}

		fieldOpts := append(specOptions(spec), cfg.common...)
		if cfg.perField != nil {
			fieldOpts = append(fieldOpts, cfg.perField(spec)...)
		}
		fieldOpts = append(fieldOpts, form.WithLogger(cfg.logger))

		title := spec.Title
		if title == "" {
			title = spec.Name
		}
		clean, _ := sanitizer.Parse(spec.Sanitize)
		field := form.New(title, form.Sanitized(in, clean), fieldOpts...)

		f.fields = append(f.fields, field)
		f.names = append(f.names, spec.Name)
		f.byName[spec.Name] = field
		f.inputs[spec.Name] = in
	}

	// Modes are installed once every field exists so compare_with may point forward.
	for _, spec := range s.Fields {
		if err := f.setup(spec, cfg.onChange); err != nil {
			return nil, errors.Join(ErrFailedToBuild, err)
		}
	}

	f.fields.MarkLast()

	for _, spec := range s.Fields {
		if cfg.disableAll || spec.ValidationDisabled {
			f.byName[spec.Name].SetValidationDisabled(true)
		}
	}

	cfg.logger.Debug("form built",
		logger.Component("formspec"),
		slog.String("form", s.Name),
		logger.Fields(len(f.fields), len(f.fields.Invalid())),
	)
	return f, nil
}

func (f *Form) setup(spec FieldSpec, onChange func()) error {
	field := f.byName[spec.Name]

	if spec.CompareWith != "" {
		return field.SetupCompare(f.byName[spec.CompareWith], spec.Error, onChange)
	}
	if len(spec.Rules) == 0 {
		return nil
	}

	rules := make([]validator.CheckRule, 0, len(spec.Rules))
	for _, expr := range spec.Rules {
		rule, err := validator.ParseRule(expr)
		if err != nil {
			return fmt.Errorf("%s: %w", spec.Name, err)
		}
		rules = append(rules, rule)
	}
	return field.SetupRules(rules, onChange)
}

func specOptions(spec FieldSpec) []form.Option {
	var opts []form.Option
	if spec.Placeholder != "" {
		opts = append(opts, form.WithPlaceholder(spec.Placeholder))
	}
	if spec.TitleStyle != "" {
		opts = append(opts, form.WithTitleStyle(spec.TitleStyle))
	}
	if spec.InputStyle != "" {
		opts = append(opts, form.WithInputStyle(spec.InputStyle))
	}
	if spec.HintStyle != "" {
		opts = append(opts, form.WithHintStyle(spec.HintStyle))
	}
	if spec.ErrorColor != "" {
		opts = append(opts, form.WithErrorColor(spec.ErrorColor))
	}
	if spec.Error != "" && spec.CompareWith == "" {
		opts = append(opts, form.WithCustomError(spec.Error))
	}

	switch spec.Type {
	case TypeEmail:
		opts = append(opts, form.AsEmail())
	case TypePassword:
		opts = append(opts, form.AsPassword())
	}
	return opts
}
