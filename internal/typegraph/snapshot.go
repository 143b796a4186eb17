// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typegraph

import (
	"sort"

	"github.com/vk/typegridgo/internal/auth"
	"github.com/vk/typegridgo/internal/funcdef"
	"github.com/vk/typegridgo/internal/typedef"
)

// ExposedFunction is one public entry of a finalized graph.
type ExposedFunction struct {
	Name     string
	Func     *funcdef.Func
	Policies []string // effective policy names, own or inherited
}

// Snapshot is the read-only contract a finalized graph hands to serving
// collaborators.
type Snapshot struct {
	Name  string
	Auths []auth.Spec
	Rate  *Rate

	// Functions lists the exposed surface in exposure order.
	Functions []ExposedFunction

	// Secrets lists every secret-marked input field as "<public>.<path>",
	// deduplicated and sorted, so the serving environment knows which
	// values must be provisioned out of band.
	Secrets []string
}

// Function looks up an exposed function by public name.
func (s *Snapshot) Function(name string) (ExposedFunction, bool) {
	for _, fn := range s.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return ExposedFunction{}, false
}

func (g *Graph) snapshot() *Snapshot {
	snap := &Snapshot{
		Name:  g.name,
		Auths: append([]auth.Spec(nil), g.auths...),
	}
	if g.rate != nil {
		r := *g.rate
		snap.Rate = &r
	}

	defaultNames := make([]string, 0, len(g.defaults))
	for _, p := range g.defaults {
		defaultNames = append(defaultNames, p.Name())
	}

	secretSet := make(map[string]struct{})
	for _, name := range g.order {
		fn := g.exposed[name]

		names := make([]string, 0, len(fn.Policies()))
		for _, p := range fn.Policies() {
			names = append(names, p.Name())
		}
		if len(names) == 0 {
			names = append(names, defaultNames...)
		}

		snap.Functions = append(snap.Functions, ExposedFunction{
			Name:     name,
			Func:     fn,
			Policies: names,
		})
		collectSecretPaths(secretSet, name, fn.Input())
	}

	snap.Secrets = make([]string, 0, len(secretSet))
	for path := range secretSet {
		snap.Secrets = append(snap.Secrets, path)
	}
	sort.Strings(snap.Secrets)
	return snap
}

// collectSecretPaths walks a descriptor and records every secret-marked
// string field under its dotted path.
func collectSecretPaths(into map[string]struct{}, prefix string, t typedef.Type) {
	switch t.Kind() {
	case typedef.KindString:
		if t.IsSecret() {
			into[prefix] = struct{}{}
		}
	case typedef.KindOptional:
		if inner, ok := t.Inner(); ok {
			collectSecretPaths(into, prefix, inner)
		}
	case typedef.KindStruct:
		for _, f := range t.Fields() {
			collectSecretPaths(into, prefix+"."+f.Name, f.Type)
		}
	}
}
