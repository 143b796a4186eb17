// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Func, the binding between an input/output contract and a
// materializer.
//
// Why distinguish between a descriptor and a Func?
//
// A descriptor only says what a value looks like. A Func pairs two
// descriptors into a callable contract - the named-parameter input record
// and the produced output shape - and names the external logic that fulfils
// it. The graph exposes Funcs, never bare descriptors, so every public name
// carries the full contract the transport needs to serve it.
package funcdef

import (
	"errors"
	"fmt"

	"github.com/vk/typegridgo/internal/materializer"
	"github.com/vk/typegridgo/internal/policy"
	"github.com/vk/typegridgo/internal/typedef"
)

var (
	// ErrInputNotStruct is returned when a binding's input descriptor is not
	// a struct record. Inputs are always named parameters.
	ErrInputNotStruct = errors.New("input descriptor must be a struct")

	// ErrNonPositiveWeight is returned when a rate weight is zero or below.
	ErrNonPositiveWeight = errors.New("weight must be positive")
)

// Func is an immutable function binding. Construct it with New; the derive
// methods return modified copies.
type Func struct {
	input    typedef.Type
	output   typedef.Type
	mat      materializer.Materializer
	weight   float64
	policies []policy.Policy
}

// New binds an input record and an output descriptor to a materializer. The
// materializer's existence is not verified here; the execution runtime
// resolves it when the graph is served.
func New(input, output typedef.Type, mat materializer.Materializer) (*Func, error) {
	if err := input.Err(); err != nil {
		return nil, fmt.Errorf("func: input: %w", err)
	}
	if err := output.Err(); err != nil {
		return nil, fmt.Errorf("func: output: %w", err)
	}
	if input.Kind() != typedef.KindStruct {
		return nil, fmt.Errorf("func: %w, got %s", ErrInputNotStruct, input.Kind())
	}
	return &Func{
		input:  input,
		output: output,
		mat:    mat,
		weight: 1,
	}, nil
}

// Weighted returns a derived binding with the given rate-cost weight.
func (f *Func) Weighted(w float64) (*Func, error) {
	if w <= 0 {
		return nil, fmt.Errorf("func: %w, got %v", ErrNonPositiveWeight, w)
	}
	out := f.clone()
	out.weight = w
	return out, nil
}

// WithPolicies returns a derived binding whose policy set is extended with
// the given policies, preserving attachment order.
func (f *Func) WithPolicies(ps ...policy.Policy) *Func {
	out := f.clone()
	out.policies = append(out.policies, ps...)
	return out
}

func (f *Func) clone() *Func {
	out := *f
	out.policies = append([]policy.Policy(nil), f.policies...)
	return &out
}

// Input returns the input record descriptor.
func (f *Func) Input() typedef.Type { return f.input }

// Output returns the output descriptor.
func (f *Func) Output() typedef.Type { return f.output }

// Materializer returns the external execution reference.
func (f *Func) Materializer() materializer.Materializer { return f.mat }

// Weight returns the rate-cost weight (1 unless derived via Weighted).
func (f *Func) Weight() float64 { return f.weight }

// Policies returns a copy of the attached policy set in attachment order.
func (f *Func) Policies() []policy.Policy {
	return append([]policy.Policy(nil), f.policies...)
}
