// Package api provides the core implementation for stampname operations.
// This package is used by both the CLI and the public library API.
package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mydehq/stampname/internal/config"
	"github.com/mydehq/stampname/internal/matcher"
	"github.com/mydehq/stampname/internal/renamer"
	"github.com/mydehq/stampname/internal/types"
)

var defaultEvents types.EventHandler

// SetDefaultEventHandler sets the handler used when no WithEvents option is given
func SetDefaultEventHandler(h types.EventHandler) {
	defaultEvents = h
}

// Option is a functional option for configuring operations
type Option func(*Options)

// Options holds configuration for stampname operations
type Options struct {
	DryRun     bool
	ConfigPath string
	SelfName   string
	Formats    []string
	Fs         afero.Fs
	Events     types.EventHandler
	Confirm    func([]types.RenameOperation) bool
}

// WithDryRun enables dry-run mode (preview changes without applying)
func WithDryRun() Option {
	return func(o *Options) { o.DryRun = true }
}

// WithConfig specifies a custom config file path
func WithConfig(path string) Option {
	return func(o *Options) { o.ConfigPath = path }
}

// WithSelfName overrides the name used to skip the tool's own files
func WithSelfName(name string) Option {
	return func(o *Options) { o.SelfName = name }
}

// WithFormats overrides the video extensions to process
func WithFormats(formats ...string) Option {
	return func(o *Options) { o.Formats = formats }
}

// WithFs runs against a custom filesystem instead of the OS one
func WithFs(fs afero.Fs) Option {
	return func(o *Options) { o.Fs = fs }
}

// WithEvents sets the progress event handler
func WithEvents(h types.EventHandler) Option {
	return func(o *Options) { o.Events = h }
}

// WithConfirm asks fn once before any rename is applied
func WithConfirm(fn func([]types.RenameOperation) bool) Option {
	return func(o *Options) { o.Confirm = fn }
}

// DefaultSelfName returns the lowercased stem of the running executable
func DefaultSelfName() string {
	if len(os.Args) == 0 {
		return ""
	}
	stem, _ := matcher.SplitExt(filepath.Base(os.Args[0]))
	return strings.ToLower(stem)
}

// LoadConfig resolves the configuration for opts: the config file (or
// defaults) with option overrides applied on top.
func LoadConfig(opts ...Option) (*types.Config, error) {
	return resolveConfig(buildOptions(opts))
}

func buildOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Fs == nil {
		options.Fs = afero.NewOsFs()
	}
	if options.Events == nil {
		options.Events = defaultEvents
	}
	return options
}

func resolveConfig(options *Options) (*types.Config, error) {
	cfg, err := config.Load(options.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if len(options.Formats) > 0 {
		cfg.Formats = options.Formats
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	if options.SelfName != "" {
		cfg.SelfName = options.SelfName
	}
	if cfg.SelfName == "" {
		cfg.SelfName = DefaultSelfName()
	}
	return cfg, nil
}

func newRenamer(opts []Option) (*renamer.Renamer, error) {
	options := buildOptions(opts)

	cfg, err := resolveConfig(options)
	if err != nil {
		return nil, err
	}

	r := renamer.New(options.Fs, cfg).WithEvents(options.Events)
	if options.DryRun {
		r.WithDryRun()
	}
	if options.Confirm != nil {
		r.WithConfirm(options.Confirm)
	}
	return r, nil
}

// Rename normalizes the names of the video files directly inside path
func Rename(ctx context.Context, path string, opts ...Option) ([]types.RenameOperation, error) {
	r, err := newRenamer(opts)
	if err != nil {
		return nil, err
	}
	return r.Execute(ctx, path)
}

// Plan computes the renames for path without applying them
func Plan(ctx context.Context, path string, opts ...Option) ([]types.RenameOperation, error) {
	r, err := newRenamer(opts)
	if err != nil {
		return nil, err
	}
	plan, err := r.Plan(ctx, path)
	if err != nil {
		return nil, err
	}
	return plan.Operations, nil
}
