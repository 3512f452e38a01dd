package formspec

import "errors"

var (
	// ErrInvalidSchema wraps every schema validation failure.
	ErrInvalidSchema = errors.New("formspec: invalid schema")

	// ErrFailedToParseYAML is returned when the document is not valid YAML for a Schema.
	ErrFailedToParseYAML = errors.New("formspec: failed to parse YAML schema")

	// ErrFailedToReadFile is returned when a schema file cannot be read.
	ErrFailedToReadFile = errors.New("formspec: failed to read schema file")

	// ErrFailedToBuild is returned when a validated schema cannot be wired into fields.
	ErrFailedToBuild = errors.New("formspec: failed to build form")

	// ErrNoFields is returned for a schema without fields.
	ErrNoFields = errors.New("schema has no fields")

	// ErrEmptyFieldName is returned for a field without a name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownFieldType is returned for a type other than text, email or password.
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrConflictingModes is returned when a field declares both rules and compare_with.
	ErrConflictingModes = errors.New("field declares both rules and compare_with")

	// ErrUnknownTarget is returned when compare_with names no field, or the field itself.
	ErrUnknownTarget = errors.New("invalid compare_with target")

	// ErrMissingCompareError is returned when compare_with has no error message.
	ErrMissingCompareError = errors.New("compare_with requires an error message")
)
