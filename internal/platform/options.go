package platform

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/spinweighted/pkg/codec"
)

// options holds the internal configuration of a Workspace.
type options struct {
	logger      *slog.Logger
	serializers map[string]codec.Serializer
	format      string
	debounce    time.Duration
	perm        uint32
}

// Option defines a functional option for configuring a Workspace.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		serializers: codec.DefaultSerializers(),
		format:      "json",
		debounce:    50 * time.Millisecond,
		perm:        0o644,
	}
}

// WithLogger sets the logger for the workspace.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSerializer registers a serializer for a file extension (".json").
func WithSerializer(ext string, s codec.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithFormat sets the format used when writing to a stream rather than a
// file with a known extension.
func WithFormat(name string) Option {
	return func(o *options) {
		o.format = name
	}
}

// WithDebounce sets how long the watcher waits for a burst of file events
// to settle before reporting.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(perm uint32) Option {
	return func(o *options) {
		o.perm = perm
	}
}
