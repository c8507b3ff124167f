package main

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/mgrep/mgrep/pkg/config"
	"github.com/mgrep/mgrep/pkg/interfaces"
	"github.com/mgrep/mgrep/pkg/matcher"
	"github.com/mgrep/mgrep/pkg/source"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config *config.Config
	Source interfaces.ContentSource
	Sink   interfaces.LineSink
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config) *Dependencies {
	return &Dependencies{
		Config: cfg,
		Source: source.NewFileSource(),
		Sink:   &writerSink{w: os.Stdout},
	}
}

// writerSink writes each line followed by a newline to an io.Writer.
type writerSink struct {
	w io.Writer
}

func (s *writerSink) EmitLine(line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run loads the file, filters its lines, and emits every match in order.
// Matcher selection is the driver's job: the core exposes only the two
// fixed entry points.
func (a *Application) Run() error {
	cfg := a.deps.Config

	contents, err := a.deps.Source.Contents(cfg.FilePath)
	if err != nil {
		return err
	}

	var matches iter.Seq[string]
	if cfg.IgnoreCase {
		matches = matcher.MatchFold(cfg.Query, contents)
	} else {
		matches = matcher.Match(cfg.Query, contents)
	}

	for line := range matches {
		if err := a.deps.Sink.EmitLine(line); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
	}

	return nil
}
