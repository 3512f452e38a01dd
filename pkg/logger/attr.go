package logger

import "log/slog"

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field title under the key "field".
func Field(title string) slog.Attr {
	return slog.String("field", title)
}

// Valid records a validity flag under the key "valid".
func Valid(v bool) slog.Attr {
	return slog.Bool("valid", v)
}

// Mode records a validation mode name under the key "mode".
func Mode(name string) slog.Attr {
	return slog.String("mode", name)
}

// Rule records a rule expression under the key "rule".
func Rule(expr string) slog.Attr {
	return slog.String("rule", expr)
}

// ValidationMessage records the message shown for a failed validation under
// the key "validation_message". Empty messages produce an empty Attr.
func ValidationMessage(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String("validation_message", msg)
}

// Fields records a summary of a field set under the key "fields".
func Fields(total, invalid int) slog.Attr {
	return slog.Group("fields",
		slog.Int("total", total),
		slog.Int("invalid", invalid),
	)
}
