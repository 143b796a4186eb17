// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typegraph

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/vk/typegridgo/internal/auth"
	"github.com/vk/typegridgo/internal/ctxlog"
	"github.com/vk/typegridgo/internal/funcdef"
	"github.com/vk/typegridgo/internal/policy"
)

// nameRe matches graph and public function names.
var nameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Graph is the mutable construction context for one exposure surface. It is
// not safe for concurrent mutation; build each graph from a single goroutine.
type Graph struct {
	name     string
	auths    []auth.Spec
	rate     *Rate
	defaults []policy.Policy

	exposed map[string]*funcdef.Func
	order   []string // exposure order

	sealed bool
}

// Option configures a Graph at creation time.
type Option func(*Graph)

// WithAuth appends an identity-provider spec.
func WithAuth(a auth.Spec) Option {
	return func(g *Graph) { g.auths = append(g.auths, a) }
}

// WithRate sets the graph-scoped rate-limit spec.
func WithRate(r Rate) Option {
	return func(g *Graph) { g.rate = &r }
}

// WithDefaultPolicies sets policies inherited by every exposed function that
// carries none of its own.
func WithDefaultPolicies(ps ...policy.Policy) Option {
	return func(g *Graph) { g.defaults = append(g.defaults, ps...) }
}

// New opens a graph under the given name.
func New(name string, opts ...Option) (*Graph, error) {
	if !nameRe.MatchString(name) {
		return nil, fmt.Errorf("typegraph: %w: %q", ErrInvalidName, name)
	}
	g := &Graph{
		name:    name,
		exposed: make(map[string]*funcdef.Func),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Name returns the graph name.
func (g *Graph) Name() string {
	return g.name
}

// AddDefaultPolicies appends policies inherited by every exposed function
// that carries none of its own. Like Expose, it is only legal while the
// graph is Open.
func (g *Graph) AddDefaultPolicies(ps ...policy.Policy) error {
	if g.sealed {
		return fmt.Errorf("typegraph %q: add default policies: %w", g.name, ErrFinalized)
	}
	g.defaults = append(g.defaults, ps...)
	return nil
}

// Expose registers a batch of public-name to binding pairs. The batch is
// all-or-nothing: if any name is invalid, already exposed, or bound to nil,
// none of the batch is registered. Names are committed in sorted order so
// exposure order is deterministic for map batches.
func (g *Graph) Expose(ctx context.Context, funcs map[string]*funcdef.Func) error {
	logger := ctxlog.FromContext(ctx)

	if g.sealed {
		return fmt.Errorf("typegraph %q: expose: %w", g.name, ErrFinalized)
	}

	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)

	// Validate the whole batch before committing any of it.
	for _, name := range names {
		if !nameRe.MatchString(name) {
			return fmt.Errorf("typegraph %q: expose: %w: %q", g.name, ErrInvalidName, name)
		}
		if funcs[name] == nil {
			return fmt.Errorf("typegraph %q: expose %q: binding must not be nil", g.name, name)
		}
		if _, taken := g.exposed[name]; taken {
			return fmt.Errorf("typegraph %q: expose: %w: %q", g.name, ErrDuplicateExposure, name)
		}
	}

	for _, name := range names {
		g.exposed[name] = funcs[name]
		g.order = append(g.order, name)
		logger.Debug("Exposed function.",
			"graph", g.name,
			"name", name,
			"materializer", funcs[name].Materializer().String(),
			"weight", funcs[name].Weight(),
		)
	}
	return nil
}

// Finalize transitions the graph from Open to Finalized, running the
// structural checks in order. On success it returns the frozen Snapshot. On
// failure the graph is still sealed and must be discarded.
func (g *Graph) Finalize(ctx context.Context) (*Snapshot, error) {
	logger := ctxlog.FromContext(ctx)

	if g.sealed {
		return nil, fmt.Errorf("typegraph %q: finalize: %w", g.name, ErrFinalized)
	}
	g.sealed = true

	// 1. Public-name uniqueness. Expose already rejects collisions, so a
	// violation here means the graph was corrupted between calls.
	seen := make(map[string]struct{}, len(g.order))
	for _, name := range g.order {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("typegraph %q: %w: %q", g.name, ErrDuplicateExposure, name)
		}
		seen[name] = struct{}{}
	}

	// 2. Policy coverage: every exposed function needs at least one policy,
	// its own or the graph default.
	for _, name := range g.order {
		if len(g.exposed[name].Policies()) == 0 && len(g.defaults) == 0 {
			return nil, fmt.Errorf("typegraph %q: %w: %q", g.name, ErrUnauthorizedExposure, name)
		}
	}

	// 3. Rate spec positivity.
	if g.rate != nil && !g.rate.valid() {
		return nil, fmt.Errorf("typegraph %q: %w: window_limit=%d window_sec=%d query_limit=%d",
			g.name, ErrInvalidRateLimit, g.rate.WindowLimit, g.rate.WindowSec, g.rate.QueryLimit)
	}

	// 4. Auth provider uniqueness.
	providers := make(map[string]struct{}, len(g.auths))
	for _, a := range g.auths {
		if _, dup := providers[a.Provider]; dup {
			return nil, fmt.Errorf("typegraph %q: %w: %q", g.name, ErrDuplicateAuth, a.Provider)
		}
		providers[a.Provider] = struct{}{}
	}

	snap := g.snapshot()
	logger.Info("Typegraph finalized.",
		"graph", g.name,
		"functions", len(snap.Functions),
		"secrets", len(snap.Secrets),
	)
	return snap, nil
}

// seal marks the graph terminal without validating. Used by Build on error
// and panic paths so a partially constructed graph cannot be reused.
func (g *Graph) seal() {
	g.sealed = true
}
