// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package materializer defines the opaque reference that ties a function
// binding to executable logic living outside the graph core.
//
// The core only ever stores a Materializer; resolving the referenced module
// member and invoking it is the execution runtime's job, performed when the
// finalized graph is served. A binding may legally reference a member that
// does not exist yet - the reference is checked at serve time, not here.
package materializer

import "fmt"

// Materializer is a lazily-resolved reference to an external execution unit.
type Materializer struct {
	// Runtime names the execution runtime expected to resolve the module,
	// e.g. "deno".
	Runtime string

	// Module is the runtime-relative path of the module, e.g.
	// "send_in_blue_send.ts".
	Module string

	// Export is the exported member to invoke, e.g. "default".
	Export string
}

// String renders the reference as runtime:module#export for logs and errors.
func (m Materializer) String() string {
	return fmt.Sprintf("%s:%s#%s", m.Runtime, m.Module, m.Export)
}

// IsZero reports whether the reference is empty.
func (m Materializer) IsZero() bool {
	return m == Materializer{}
}
