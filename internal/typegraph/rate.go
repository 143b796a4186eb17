// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typegraph

// Rate is the graph-scoped rate-limit spec. All three fields must be
// positive for the graph to finalize; whether QueryLimit exceeds WindowLimit
// is the issuing system's concern, not checked here.
type Rate struct {
	// WindowLimit is the request budget per window.
	WindowLimit int

	// WindowSec is the window duration in seconds.
	WindowSec int

	// QueryLimit is the total per-query budget, consumed in units of each
	// function's weight.
	QueryLimit int
}

func (r Rate) valid() bool {
	return r.WindowLimit > 0 && r.WindowSec > 0 && r.QueryLimit > 0
}
