// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package typedef

import "github.com/zclconf/go-cty/cty"

// CtyType converts a descriptor into the equivalent cty.Type, which is the
// value representation transport collaborators consume. Struct descriptors
// become object types whose optional fields are optional attributes;
// optionality of the top-level descriptor itself is carried by the caller.
func (t Type) CtyType() cty.Type {
	switch t.kind {
	case KindBoolean:
		return cty.Bool
	case KindString:
		// Format, secrecy and raw defaults are annotations, not shapes.
		return cty.String
	case KindOptional:
		return t.inner.CtyType()
	case KindStruct:
		attrs := make(map[string]cty.Type, len(t.fields))
		var optional []string
		for _, f := range t.fields {
			attrs[f.Name] = f.Type.CtyType()
			if f.Type.kind == KindOptional {
				optional = append(optional, f.Name)
			}
		}
		if len(optional) > 0 {
			return cty.ObjectWithOptionalAttrs(attrs, optional)
		}
		return cty.Object(attrs)
	default:
		return cty.NilType
	}
}
