package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/typegridgo/internal/ctxlog"
	"github.com/vk/typegridgo/internal/registry"
	"github.com/vk/typegridgo/internal/tghcl"
	"github.com/vk/typegridgo/internal/typegraph"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	loader *tghcl.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. Extra
// policies beyond the built-ins can be registered on reg before calling.
func NewApp(outW, errW io.Writer, appConfig *Config, reg *registry.Registry) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	if reg == nil {
		reg = registry.New()
	}

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		loader: tghcl.NewLoader(reg),
	}
}

// Run loads every manifest under the configured path, finalizes the declared
// typegraphs, and writes a summary of the exposed surface.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	snaps, err := a.loader.Load(ctx, appConfig.GraphPath)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Fprintf(a.outW, "No typegraphs found under %s.\n", appConfig.GraphPath)
		return nil
	}

	for _, snap := range snaps {
		a.printSnapshot(snap)
	}
	return nil
}

func (a *App) printSnapshot(snap *typegraph.Snapshot) {
	fmt.Fprintf(a.outW, "typegraph %s\n", snap.Name)

	for _, spec := range snap.Auths {
		fmt.Fprintf(a.outW, "  auth %s (%s)\n", spec.Provider, spec.Protocol)
	}
	if snap.Rate != nil {
		fmt.Fprintf(a.outW, "  rate %d/%ds, query budget %d\n",
			snap.Rate.WindowLimit, snap.Rate.WindowSec, snap.Rate.QueryLimit)
	}

	for _, fn := range snap.Functions {
		fmt.Fprintf(a.outW, "  func %s -> %s (weight %g, policies: %s)\n",
			fn.Name,
			fn.Func.Materializer(),
			fn.Func.Weight(),
			strings.Join(fn.Policies, ", "),
		)
	}

	if len(snap.Secrets) > 0 {
		fmt.Fprintf(a.outW, "  secrets: %s\n", strings.Join(snap.Secrets, ", "))
	}
}
