// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typegraph

import "context"

// Build is the scoped-construction helper. It opens a graph, hands it to fn,
// and guarantees the graph is sealed on every exit path: a normal return
// finalizes and yields the Snapshot, while an error return or a panic seals
// the graph without validating and lets the original failure propagate
// unmasked. The sealed graph rejects any further mutation.
func Build(ctx context.Context, name string, fn func(g *Graph) error, opts ...Option) (snap *Snapshot, err error) {
	g, err := New(name, opts...)
	if err != nil {
		return nil, err
	}

	defer func() {
		// Covers the panic path; Finalize seals on the normal path.
		g.seal()
	}()

	if err := fn(g); err != nil {
		return nil, err
	}
	return g.Finalize(ctx)
}
