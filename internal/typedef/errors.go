// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typedef

import "errors"

var (
	// ErrTypeMismatch is recorded when a modifier is applied to a descriptor
	// variant it does not support (e.g. Secret on a Boolean).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDuplicateField is recorded when a Struct is built with a repeated
	// or empty field name.
	ErrDuplicateField = errors.New("duplicate field")
)
