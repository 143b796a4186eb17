// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package deno builds materializer references into TypeScript/JavaScript
// modules served by a Deno execution runtime.
package deno

import "github.com/vk/typegridgo/internal/materializer"

// RuntimeName identifies the deno runtime in materializer references.
const RuntimeName = "deno"

// ModuleMat is a handle on one script module from which exported members can
// be imported as materializers.
type ModuleMat struct {
	path string
}

// Module returns a handle on the script module at the given path.
func Module(path string) *ModuleMat {
	return &ModuleMat{path: path}
}

// Import references one exported member of the module. The member's
// existence is not verified here; the runtime checks it at serve time.
func (m *ModuleMat) Import(member string) materializer.Materializer {
	return materializer.Materializer{
		Runtime: RuntimeName,
		Module:  m.path,
		Export:  member,
	}
}
