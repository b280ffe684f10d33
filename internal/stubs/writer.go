// Package stubs writes weekly report stubs into a site content tree.
package stubs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonathan/weekly-stubs/internal/rendering"
	"github.com/jonathan/weekly-stubs/internal/repo"
	"github.com/jonathan/weekly-stubs/internal/types"
)

// Outcome is the decision made for a single stub file.
type Outcome int

const (
	Created Outcome = iota
	Skipped
)

func (o Outcome) String() string {
	if o == Skipped {
		return "skipped"
	}
	return "created"
}

// Writer applies the existence policy to rendered documents under ContentRoot.
type Writer struct {
	ContentRoot string
	Force       bool // overwrite existing files
	DryRun      bool // decide and count, but touch nothing on disk

	counters types.Counters
}

// Counters returns the decisions made so far.
func (w *Writer) Counters() types.Counters {
	return w.counters
}

// Path returns where doc is stored: <ContentRoot>/<lang>/weekly/<slug>.<lang>.md.
func (w *Writer) Path(doc *rendering.Document) string {
	return filepath.Join(repo.WeeklyDir(w.ContentRoot, doc.Lang), doc.Filename())
}

// Write stores doc at Path(doc). An existing file is left untouched unless
// Force is set; its content is not inspected.
func (w *Writer) Write(doc *rendering.Document) (Outcome, error) {
	path := w.Path(doc)
	dir := filepath.Dir(path)

	if !w.DryRun {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Created, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	exists, err := fileExists(path)
	if err != nil {
		return Created, err
	}

	if exists && !w.Force {
		w.counters.Skipped++
		return Skipped, nil
	}

	if !w.DryRun {
		if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
			return Created, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	w.counters.Created++
	return Created, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
}
