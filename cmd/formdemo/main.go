// Command formdemo renders a sign-up form in the terminal and validates it
// as the user types.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/formspec"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

//go:embed signup.yaml
var defaultSchema []byte

var errCancelled = errors.New("form cancelled")

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out, closeLog, err := logOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(out),
	)
	logger.SetAsDefault(log)

	schema, err := loadSchema(cfg.SchemaPath)
	if err != nil {
		log.Error("failed to load form schema", logger.Error(err), slog.String("path", cfg.SchemaPath))
		return err
	}

	m, err := newModel(schema, cfg.ValidationDisabled, log)
	if err != nil {
		log.Error("failed to build form", logger.Error(err))
		return err
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	if !m.submitted {
		return errCancelled
	}
	return nil
}

func loadSchema(path string) (*formspec.Schema, error) {
	if path == "" {
		return formspec.Parse(defaultSchema)
	}
	return formspec.Load(path)
}

// logOutput opens path for appending. An empty path discards records, since
// the terminal belongs to the UI.
func logOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
