// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package typegraph assembles function bindings into a named, validated,
// frozen exposure surface.
//
// # Lifecycle
//
// A Graph has exactly two states. It is created Open, accepts Expose calls
// and nothing else mutates it, then transitions to Finalized exactly once.
// Finalize runs the structural checks (public-name uniqueness, policy
// coverage, rate-limit positivity, auth-provider uniqueness) and, on
// success, returns an immutable Snapshot - the contract handed to serving
// collaborators. A graph whose finalization failed is sealed too: it can
// never be mutated again and has no Snapshot, so it must be discarded.
//
// Build is the scoped-construction helper: it opens a graph, runs the
// caller's construction callback, and guarantees the graph is sealed on
// every exit path, including error returns and panics. Validation runs only
// when construction succeeded, so a construction error propagates unmasked.
//
// Graphs built in the same process are fully independent; no mutable state
// is shared and no Graph instance supports concurrent mutation.
package typegraph
