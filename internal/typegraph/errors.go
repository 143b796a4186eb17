// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typegraph

import "errors"

var (
	// ErrInvalidName is returned when a graph or public function name is
	// empty or not identifier-shaped.
	ErrInvalidName = errors.New("invalid name")

	// ErrFinalized is returned when a mutation is attempted on a sealed
	// graph.
	ErrFinalized = errors.New("graph is finalized")

	// ErrDuplicateExposure is returned when a public name is exposed twice.
	ErrDuplicateExposure = errors.New("duplicate exposure")

	// ErrUnauthorizedExposure is returned at finalization when an exposed
	// function carries no policy, own or inherited. An endpoint without a
	// policy is rejected rather than silently left open.
	ErrUnauthorizedExposure = errors.New("exposed function has no policy")

	// ErrInvalidRateLimit is returned at finalization when a rate spec has
	// a non-positive field.
	ErrInvalidRateLimit = errors.New("invalid rate limit")

	// ErrDuplicateAuth is returned at finalization when two auth specs
	// share a provider name.
	ErrDuplicateAuth = errors.New("duplicate auth provider")
)
