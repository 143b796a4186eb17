// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package policy defines the named access-decision associations attached to
// function bindings and graphs.
//
// A Policy is pure data plus a capability handle: the graph core validates
// that every exposed function carries at least one policy, but never invokes
// the decision procedure itself. Evaluation belongs to the serving runtime.
package policy

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Request carries what a decision procedure may inspect.
type Request struct {
	// Function is the public name of the exposed function being called.
	Function string

	// Claims holds the verified identity claims for the caller.
	Claims map[string]cty.Value
}

// Decider is the capability interface for an access-decision procedure.
type Decider interface {
	// Decide reports whether the request is permitted.
	Decide(ctx context.Context, req Request) (bool, error)
}

// DeciderFunc adapts a plain function to the Decider interface.
type DeciderFunc func(ctx context.Context, req Request) (bool, error)

// Decide implements Decider.
func (f DeciderFunc) Decide(ctx context.Context, req Request) (bool, error) {
	return f(ctx, req)
}

// Policy is a named access-decision association.
type Policy struct {
	name    string
	decider Decider
}

// New returns a policy pairing a name with a decision procedure.
func New(name string, decider Decider) (Policy, error) {
	if name == "" {
		return Policy{}, fmt.Errorf("policy: name must not be empty")
	}
	if decider == nil {
		return Policy{}, fmt.Errorf("policy %q: decider must not be nil", name)
	}
	return Policy{name: name, decider: decider}, nil
}

// AllowAllName is the name of the built-in permit-everything policy.
const AllowAllName = "allow_all"

// AllowAll returns the built-in policy that permits every request.
func AllowAll() Policy {
	return Policy{
		name: AllowAllName,
		decider: DeciderFunc(func(context.Context, Request) (bool, error) {
			return true, nil
		}),
	}
}

// Name returns the policy's name.
func (p Policy) Name() string {
	return p.name
}

// Decider returns the decision procedure handle.
func (p Policy) Decider() Decider {
	return p.decider
}
