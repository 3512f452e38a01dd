// Package logger builds slog loggers for formkit binaries and keeps attribute
// names consistent across packages.
//
// New creates a *slog.Logger configured by Option functions: WithFormat,
// WithLevel, WithOutput, WithAttr and WithEnvironment, which picks text at
// debug level for development and JSON at info level for staging and
// production. Records go to stderr by default so a terminal UI can own stdout.
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, cfg.Service))
//	field := form.New("Email", input, form.WithLogger(log))
//
// Helper constructors (Field, Mode, Valid, ValidationMessage, Error ...)
// return slog.Attr values. Error and ValidationMessage return an empty Attr
// for nil or empty input, so they can be passed without a guard.
package logger
