// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the HCL schemas for graph manifests and the parsing of
// their blocks into the construction core's values.

package tghcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/typegridgo/internal/auth"
	"github.com/vk/typegridgo/internal/typedef"
	"github.com/vk/typegridgo/internal/typegraph"
)

// rootSchema is the top-level structure of a manifest file, expecting one or
// more 'typegraph' blocks.
type rootSchema struct {
	Typegraphs []*hclTypegraph `hcl:"typegraph,block"`
}

// hclTypegraph represents a single 'typegraph' block for decoding purposes.
type hclTypegraph struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// typegraphBodySchema defines the body of a 'typegraph' block.
var typegraphBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "policies"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "auth", LabelNames: []string{"provider"}},
		{Type: "rate"},
		{Type: "func", LabelNames: []string{"name"}},
	},
}

// authBodySchema defines the body of an 'auth' block.
var authBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "protocol"},
		{Name: "data"},
	},
}

// funcBodySchema defines the body of a 'func' block.
var funcBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "runtime"},
		{Name: "module"},
		{Name: "export"},
		{Name: "weight"},
		{Name: "policies"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
	},
}

// fieldBodySchema defines the body of an 'input' or 'output' block.
var fieldBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "format"},
		{Name: "secret"},
		{Name: "raw"},
		{Name: "optional"},
	},
}

// hclRate mirrors the 'rate' block for gohcl decoding.
type hclRate struct {
	WindowLimit int `hcl:"window_limit"`
	WindowSec   int `hcl:"window_sec"`
	QueryLimit  int `hcl:"query_limit"`
}

// parseAuth decodes one 'auth' block into an auth spec.
func parseAuth(block *hcl.Block) (auth.Spec, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	spec := auth.Spec{Provider: block.Labels[0]}

	bodyContent, contentDiags := block.Body.Content(authBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return spec, diags
	}

	protocolAttr, exists := bodyContent.Attributes["protocol"]
	if !exists {
		missingItemRange := block.Body.MissingItemRange()
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'protocol' attribute",
			Detail:   "The 'protocol' attribute is required for all auth blocks.",
			Subject:  &missingItemRange,
		})
		return spec, diags
	}
	var protocol string
	diags = append(diags, gohcl.DecodeExpression(protocolAttr.Expr, nil, &protocol)...)
	spec.Protocol = auth.Protocol(protocol)

	if dataAttr, exists := bodyContent.Attributes["data"]; exists {
		var data map[string]string
		diags = append(diags, gohcl.DecodeExpression(dataAttr.Expr, nil, &data)...)
		spec.Data = data
	}

	return spec, diags
}

// parseRate decodes the optional, unique 'rate' block.
func parseRate(blocks hcl.Blocks) (*typegraph.Rate, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var found *hcl.Block

	for _, block := range blocks.OfType("rate") {
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"rate\" block",
				Detail:   "Only one \"rate\" block is allowed per typegraph.",
				Subject:  &block.DefRange,
			})
			continue
		}
		found = block
	}
	if found == nil || diags.HasErrors() {
		return nil, diags
	}

	var raw hclRate
	diags = append(diags, gohcl.DecodeBody(found.Body, nil, &raw)...)
	if diags.HasErrors() {
		return nil, diags
	}
	return &typegraph.Rate{
		WindowLimit: raw.WindowLimit,
		WindowSec:   raw.WindowSec,
		QueryLimit:  raw.QueryLimit,
	}, diags
}

// parseFields decodes all 'input' or 'output' blocks, in source order, into
// struct fields.
func parseFields(blocks hcl.Blocks, blockType string) ([]typedef.Field, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var fields []typedef.Field
	seen := make(map[string]struct{})

	for _, block := range blocks.OfType(blockType) {
		// The schema guarantees one label.
		fieldName := block.Labels[0]

		if _, exists := seen[fieldName]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Duplicate %s definition", blockType),
				Detail:   fmt.Sprintf("An %s named '%s' has already been defined.", blockType, fieldName),
				Subject:  &block.DefRange,
			})
			continue
		}
		seen[fieldName] = struct{}{}

		desc, fieldDiags := parseFieldBody(block)
		diags = append(diags, fieldDiags...)
		if fieldDiags.HasErrors() {
			continue
		}

		fields = append(fields, typedef.Field{Name: fieldName, Type: desc})
	}

	return fields, diags
}

// parseFieldBody composes one descriptor from a field block's attributes.
func parseFieldBody(block *hcl.Block) (typedef.Type, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	bodyContent, contentDiags := block.Body.Content(fieldBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return typedef.Type{}, diags
	}

	typeAttr, exists := bodyContent.Attributes["type"]
	if !exists {
		missingItemRange := block.Body.MissingItemRange()
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'type' attribute",
			Detail:   "The 'type' attribute is required for all input and output blocks.",
			Subject:  &missingItemRange,
		})
		return typedef.Type{}, diags
	}

	desc, typeDiags := typeExprToDescriptor(typeAttr.Expr)
	diags = append(diags, typeDiags...)
	if typeDiags.HasErrors() {
		return typedef.Type{}, diags
	}

	if formatAttr, exists := bodyContent.Attributes["format"]; exists {
		var format string
		if evalDiags := gohcl.DecodeExpression(formatAttr.Expr, nil, &format); evalDiags.HasErrors() {
			return typedef.Type{}, append(diags, evalDiags...)
		}
		switch typedef.StringFormat(format) {
		case typedef.FormatPlain:
			// no-op
		case typedef.FormatEmail:
			desc = typedef.Email()
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported format",
				Detail:   fmt.Sprintf("The string format '%s' is not supported.", format),
				Subject:  formatAttr.Expr.Range().Ptr(),
			})
			return typedef.Type{}, diags
		}
	}

	if rawAttr, exists := bodyContent.Attributes["raw"]; exists {
		var raw string
		if evalDiags := gohcl.DecodeExpression(rawAttr.Expr, nil, &raw); evalDiags.HasErrors() {
			return typedef.Type{}, append(diags, evalDiags...)
		}
		desc = desc.Raw(raw)
	}

	var secret bool
	if secretAttr, exists := bodyContent.Attributes["secret"]; exists {
		if evalDiags := gohcl.DecodeExpression(secretAttr.Expr, nil, &secret); evalDiags.HasErrors() {
			return typedef.Type{}, append(diags, evalDiags...)
		}
	}
	if secret {
		desc = desc.Secret()
	}

	var optional bool
	if optionalAttr, exists := bodyContent.Attributes["optional"]; exists {
		if evalDiags := gohcl.DecodeExpression(optionalAttr.Expr, nil, &optional); evalDiags.HasErrors() {
			return typedef.Type{}, append(diags, evalDiags...)
		}
	}
	if optional {
		desc = desc.Optional()
	}

	// Descriptor-level misuse (e.g. secret on a bool) carries a recorded
	// error; surface it at the block that caused it.
	if err := desc.Err(); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid descriptor",
			Detail:   err.Error(),
			Subject:  &block.DefRange,
		})
		return typedef.Type{}, diags
	}

	return desc, diags
}
