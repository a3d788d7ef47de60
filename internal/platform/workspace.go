// Package platform wires the spinw command to the filesystem: reading and
// writing field files, expanding glob patterns and watching files.
package platform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/spinweighted/pkg/codec"
	"github.com/aretw0/spinweighted/pkg/field"
)

// ErrNoMatch reports a pattern that matched no file.
var ErrNoMatch = errors.New("no file matches pattern")

// Workspace reads and writes field files. The serializer is chosen by file
// extension.
type Workspace struct {
	opts *options

	mu            sync.RWMutex
	loads         int
	saves         int
	watcherActive bool
}

// New creates a Workspace.
func New(opts ...Option) *Workspace {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Workspace{opts: o}
}

// Logger returns the configured logger.
func (w *Workspace) Logger() *slog.Logger {
	return w.opts.logger
}

// Expand resolves doublestar patterns ("fields/**/*.json") to a sorted,
// duplicate-free list of files. A pattern without matches is an error.
func (w *Workspace) Expand(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	w.opts.logger.Debug("expanded patterns", "patterns", patterns, "files", len(paths))
	return paths, nil
}

// Load decodes the field stored at path.
func (w *Workspace) Load(path string) (field.Field, error) {
	s, err := codec.ForPath(w.opts.serializers, path)
	if err != nil {
		return field.Field{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return field.Field{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var f field.Field
	if err := s.Unmarshal(data, &f); err != nil {
		return field.Field{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	w.mu.Lock()
	w.loads++
	w.mu.Unlock()

	w.opts.logger.Debug("loaded field", "path", path, "spin", f.Spin, "size", f.Size())
	return f, nil
}

// Save encodes f into path atomically.
func (w *Workspace) Save(path string, f field.Field) error {
	s, err := codec.ForPath(w.opts.serializers, path)
	if err != nil {
		return err
	}
	data, err := s.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := writeFileAtomic(path, data, os.FileMode(w.opts.perm)); err != nil {
		return err
	}

	w.mu.Lock()
	w.saves++
	w.mu.Unlock()

	w.opts.logger.Debug("saved field", "path", path, "spin", f.Spin, "size", f.Size())
	return nil
}

// Emit writes f to path when path is set, and to out in the default format
// otherwise.
func (w *Workspace) Emit(out io.Writer, path string, f field.Field) error {
	if path != "" {
		return w.Save(path, f)
	}
	s, err := codec.ForFormat(w.opts.serializers, w.opts.format)
	if err != nil {
		return err
	}
	data, err := s.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode field: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// WorkspaceState exposes internal state for observability.
type WorkspaceState struct {
	Format        string   `json:"format"`
	Serializers   []string `json:"serializers"`
	Loads         int      `json:"loads"`
	Saves         int      `json:"saves"`
	WatcherActive bool     `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (w *Workspace) State() any {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return WorkspaceState{
		Format:        w.opts.format,
		Serializers:   codec.Extensions(w.opts.serializers),
		Loads:         w.loads,
		Saves:         w.saves,
		WatcherActive: w.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (w *Workspace) ComponentType() string {
	return "workspace"
}

var _ introspection.Introspectable = (*Workspace)(nil)
var _ introspection.Component = (*Workspace)(nil)

func (w *Workspace) setWatcherActive(active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.watcherActive = active
}
