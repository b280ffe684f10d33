package stubs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/weekly-stubs/internal/logging"
	"github.com/jonathan/weekly-stubs/internal/rendering"
	"github.com/jonathan/weekly-stubs/internal/repo"
	"github.com/jonathan/weekly-stubs/internal/types"
	"github.com/jonathan/weekly-stubs/internal/weeks"
)

// Options describes one generation run.
type Options struct {
	RepoRoot string    `validate:"required"`
	Start    time.Time `validate:"required"`
	EndYear  int       `validate:"min=1,max=9999"`
	Force    bool
	DryRun   bool
}

// Validate checks that the options describe a runnable generation.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// Generator renders every retained week in every profile and writes the results.
type Generator struct {
	Profiles []types.LanguageProfile
	Logger   *slog.Logger
}

// NewGenerator creates a Generator for the given profiles.
func NewGenerator(profiles []types.LanguageProfile, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Generator{Profiles: profiles, Logger: logger}
}

// Run generates stubs from opts.Start through December 31 of opts.EndYear.
// It stops at the first error; files written before the error are kept.
func (g *Generator) Run(opts Options) (types.Counters, error) {
	if err := opts.Validate(); err != nil {
		return types.Counters{}, err
	}

	w := &Writer{
		ContentRoot: repo.ContentRoot(opts.RepoRoot),
		Force:       opts.Force,
		DryRun:      opts.DryRun,
	}
	end := weeks.EndOfYear(opts.EndYear)

	g.Logger.Debug("generating weekly stubs",
		"content_root", w.ContentRoot,
		"start", weeks.FormatDate(opts.Start),
		"end", weeks.FormatDate(end),
		"languages", len(g.Profiles),
	)

	for week := range weeks.Range(opts.Start, end) {
		for _, profile := range g.Profiles {
			doc, err := rendering.Render(week, profile)
			if err != nil {
				return w.Counters(), fmt.Errorf("failed to render %s (%s): %w", week.Slug(), profile.Lang, err)
			}

			outcome, err := w.Write(doc)
			if err != nil {
				return w.Counters(), err
			}
			g.Logger.Debug(outcome.String()+" stub", "path", w.Path(doc), "force", opts.Force, "dry_run", opts.DryRun)
		}
	}

	return w.Counters(), nil
}
