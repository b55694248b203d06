package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/logger"
	"github.com/typepair-labs/typepair-cli/internal/normalisers/fonts"
)

// Ensure LocalFileSource implements the interface.
var _ driven.CatalogueSource = (*LocalFileSource)(nil)

// LocalFileSource reads a user-provided fallback catalogue document.
// It sits below the network tiers: always available offline, never
// fresher than the mirrors.
type LocalFileSource struct {
	path string
}

// NewLocalFileSource creates the local fallback tier. An empty path
// selects ~/.typepair/fonts_fallback.json.
func NewLocalFileSource(path string) (*LocalFileSource, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".typepair", "fonts_fallback.json")
	}
	return &LocalFileSource{path: path}, nil
}

// Label returns the tier name.
func (s *LocalFileSource) Label() string { return "local fallback" }

// Quality returns the tier's trust rank.
func (s *LocalFileSource) Quality() domain.Quality { return domain.QualityLocalFile }

// Path returns the fallback document location.
func (s *LocalFileSource) Path() string { return s.path }

// Fetch reads and normalises the fallback document. The payload is a
// bare entry array or an object with a "fonts" array.
func (s *LocalFileSource) Fetch(_ context.Context) (*driven.FetchResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}

	entries, err := decodeEntryList(data, "fonts")
	if err != nil {
		return nil, err
	}

	catalogue, signature := fonts.Build(entries)
	if len(catalogue) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyCatalogue, s.path)
	}

	logger.Debug("Local fallback: %d families, signature %s", len(catalogue), signature)
	return &driven.FetchResult{
		Fonts:       catalogue,
		Signature:   signature,
		SourceStamp: "local-fallback",
	}, nil
}

// Watch invokes onChange whenever the fallback document is written or
// created, until ctx is cancelled. The parent directory is watched so
// editors that replace the file atomically are still seen; the
// directory must exist.
func (s *LocalFileSource) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(s.path), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					logger.Debug("Local fallback changed: %s", event.Name)
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Fallback watcher error: %v", err)
			}
		}
	}()

	return nil
}
