// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package typedef provides the immutable type descriptors from which every
// exposed function contract is composed.
//
// # Core Concepts
//
// A descriptor is a Type value describing the shape of a value accepted or
// produced by an exposed function:
//
//   - Boolean and String are the primitive shapes. A String may additionally
//     carry a format (such as "email"), a secrecy marker, and a raw literal
//     default for constant/template fields.
//
//   - Struct is an ordered record of uniquely named fields. Every function's
//     input contract is a Struct, which is what gives exposed functions their
//     named-parameter calling convention.
//
//   - Optional wraps any descriptor. Wrapping an already-optional descriptor
//     collapses to a single level of optionality.
//
// Why immutable values with derive-style modifiers?
//
// Modifiers such as Optional, Secret and Raw never mutate the receiver; each
// returns a derived copy. This makes a base descriptor safe to share across
// many function bindings: `String()` can feed both a plain field and a
// secret field without either derivation observing the other.
//
// Why poisoned values instead of (Type, error) modifiers?
//
// Returning an error from every modifier would break fluent composition
// (`String().Raw(v).Optional()`), so an illegal derivation instead records
// the misuse inside the derived value. The error is available immediately
// via Err and is rejected, wrapped, at every construction boundary that
// consumes descriptors (Struct, function binding construction). A poisoned
// descriptor can therefore never reach a graph.
package typedef
