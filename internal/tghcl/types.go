// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tghcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/typegridgo/internal/typedef"
)

// typeExprToDescriptor converts an HCL expression holding a type keyword
// (`string`, `bool`) into the base descriptor for that keyword.
func typeExprToDescriptor(expr hcl.Expression) (typedef.Type, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	// A type keyword is a bare identifier, so AbsTraversalForExpr is the
	// right tool to validate the shape.
	traversal, hclDiags := hcl.AbsTraversalForExpr(expr)
	if hclDiags.HasErrors() || len(traversal) != 1 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid type specification",
			Detail:   "The 'type' attribute must be a simple type keyword like 'string' or 'bool', not a complex expression.",
			Subject:  expr.Range().Ptr(),
		})
		return typedef.Type{}, diags
	}

	switch name := traversal.RootName(); name {
	case "string":
		return typedef.String(), diags
	case "bool":
		return typedef.Boolean(), diags
	default:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported type",
			Detail:   fmt.Sprintf("The keyword '%s' is not a valid descriptor type. Supported types are: string, bool.", name),
			Subject:  expr.Range().Ptr(),
		})
		return typedef.Type{}, diags
	}
}
