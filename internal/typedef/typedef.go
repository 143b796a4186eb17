// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typedef

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Kind discriminates the descriptor variants.
type Kind int

const (
	KindBoolean Kind = iota
	KindString
	KindStruct
	KindOptional
)

// String returns the lower-case variant name, for error messages and logs.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindStruct:
		return "struct"
	case KindOptional:
		return "optional"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// StringFormat constrains the textual format of a String descriptor.
type StringFormat string

const (
	FormatPlain StringFormat = ""
	FormatEmail StringFormat = "email"
	FormatURI   StringFormat = "uri"
)

// Field is one named entry of a Struct descriptor.
type Field struct {
	Name string
	Type Type
}

// Type is an immutable descriptor of a value shape. The zero value is a
// Boolean descriptor; use the package constructors rather than literals.
type Type struct {
	kind   Kind
	format StringFormat // String only
	secret bool         // String only
	raw    *cty.Value   // String only: literal default for constant fields
	fields []Field      // Struct only, insertion order
	inner  *Type        // Optional only
	err    error        // first construction misuse, surfaced at boundaries
}

// Boolean returns the boolean descriptor.
func Boolean() Type {
	return Type{kind: KindBoolean}
}

// String returns the plain string descriptor.
func String() Type {
	return Type{kind: KindString}
}

// Email returns a string descriptor constrained to the email format.
func Email() Type {
	return Type{kind: KindString, format: FormatEmail}
}

// Struct returns a record descriptor over the given fields, preserving their
// order. A repeated field name or a poisoned field type poisons the result.
func Struct(fields ...Field) Type {
	seen := make(map[string]struct{}, len(fields))
	out := Type{kind: KindStruct, fields: append([]Field(nil), fields...)}

	for _, f := range fields {
		if f.Name == "" {
			out.err = fmt.Errorf("struct: %w: field name must not be empty", ErrDuplicateField)
			return out
		}
		if _, dup := seen[f.Name]; dup {
			out.err = fmt.Errorf("struct: %w: %q", ErrDuplicateField, f.Name)
			return out
		}
		seen[f.Name] = struct{}{}

		if err := f.Type.Err(); err != nil {
			out.err = fmt.Errorf("struct: field %q: %w", f.Name, err)
			return out
		}
	}
	return out
}

// Optional returns a derived descriptor that marks the value as omissible.
// Applying it to an already-optional descriptor returns the receiver
// unchanged, so optionality never nests.
func (t Type) Optional() Type {
	if t.kind == KindOptional || t.err != nil {
		return t
	}
	inner := t
	return Type{kind: KindOptional, inner: &inner}
}

// Secret returns a derived String descriptor marked secret. Idempotent.
// Applying it to a non-String descriptor poisons the result.
func (t Type) Secret() Type {
	if t.err != nil {
		return t
	}
	if t.kind != KindString {
		t.err = fmt.Errorf("secret: %w: secrecy applies to string descriptors only, got %s", ErrTypeMismatch, t.kind)
		return t
	}
	t.secret = true
	return t
}

// Raw returns a derived String descriptor carrying a literal default. It is
// meant for constant/template fields; applying it to a non-String descriptor
// poisons the result.
func (t Type) Raw(value string) Type {
	if t.err != nil {
		return t
	}
	if t.kind != KindString {
		t.err = fmt.Errorf("raw: %w: literal defaults apply to string descriptors only, got %s", ErrTypeMismatch, t.kind)
		return t
	}
	v := cty.StringVal(value)
	t.raw = &v
	return t
}

// Err reports the first construction misuse recorded on this descriptor, or
// nil if the descriptor is well-formed.
func (t Type) Err() error {
	return t.err
}

// Kind returns the descriptor variant.
func (t Type) Kind() Kind {
	return t.kind
}

// Format returns the string format constraint. FormatPlain for non-Strings.
func (t Type) Format() StringFormat {
	return t.format
}

// IsSecret reports whether this String descriptor is marked secret.
func (t Type) IsSecret() bool {
	return t.secret
}

// RawDefault returns the literal default of a String descriptor, if any.
func (t Type) RawDefault() (cty.Value, bool) {
	if t.raw == nil {
		return cty.NilVal, false
	}
	return *t.raw, true
}

// Fields returns a copy of a Struct descriptor's fields in insertion order.
// It returns nil for non-Struct descriptors.
func (t Type) Fields() []Field {
	if t.kind != KindStruct {
		return nil
	}
	return append([]Field(nil), t.fields...)
}

// Inner returns the wrapped descriptor of an Optional.
func (t Type) Inner() (Type, bool) {
	if t.kind != KindOptional {
		return Type{}, false
	}
	return *t.inner, true
}
