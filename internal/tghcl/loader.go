// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tghcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/typegridgo/internal/ctxlog"
	"github.com/vk/typegridgo/internal/funcdef"
	"github.com/vk/typegridgo/internal/fsutil"
	"github.com/vk/typegridgo/internal/materializer"
	"github.com/vk/typegridgo/internal/policy"
	"github.com/vk/typegridgo/internal/registry"
	"github.com/vk/typegridgo/internal/runtimes/deno"
	"github.com/vk/typegridgo/internal/typedef"
	"github.com/vk/typegridgo/internal/typegraph"
)

// Loader parses graph manifests and builds finalized snapshots from them.
type Loader struct {
	reg *registry.Registry
}

// NewLoader returns a Loader resolving policy names against reg. A nil reg
// gets a fresh registry with only the built-in policies.
func NewLoader(reg *registry.Registry) *Loader {
	if reg == nil {
		reg = registry.New()
	}
	return &Loader{reg: reg}
}

// Load discovers every .hcl manifest under the given paths (files or
// directories), builds all declared typegraphs, and returns their snapshots.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*typegraph.Snapshot, error) {
	logger := ctxlog.FromContext(ctx)

	var filePaths []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk manifest path %s: %w", path, err)
		}
		filePaths = append(filePaths, found...)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found.", "paths", paths)
		return nil, nil
	}
	logger.Debug("Found manifest files to load.", "files", filePaths)

	parser := hclparse.NewParser()
	var snaps []*typegraph.Snapshot

	for _, filePath := range filePaths {
		hclFile, parseDiags := parser.ParseHCLFile(filePath)
		if parseDiags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", filePath, parseDiags)
		}
		fileSnaps, err := l.loadFile(ctx, hclFile, filePath)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, fileSnaps...)
	}

	logger.Info("Manifests loaded successfully.", "typegraphs", len(snaps))
	return snaps, nil
}

// Parse builds the typegraphs declared in one in-memory manifest.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) ([]*typegraph.Snapshot, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}
	return l.loadFile(ctx, hclFile, filename)
}

func (l *Loader) loadFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*typegraph.Snapshot, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading typegraph definitions from file.", "file_path", filePath)

	root := &rootSchema{}
	if diags := gohcl.DecodeBody(hclFile.Body, nil, root); diags.HasErrors() {
		return nil, fmt.Errorf("invalid manifest %s: %w", filePath, diags)
	}

	snaps := make([]*typegraph.Snapshot, 0, len(root.Typegraphs))
	for _, parsed := range root.Typegraphs {
		snap, err := l.buildGraph(ctx, parsed)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", filePath, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// buildGraph translates one 'typegraph' block into a finalized snapshot.
func (l *Loader) buildGraph(ctx context.Context, parsed *hclTypegraph) (*typegraph.Snapshot, error) {
	bodyContent, contentDiags := parsed.Body.Content(typegraphBodySchema)
	if contentDiags.HasErrors() {
		return nil, fmt.Errorf("typegraph %q: %w", parsed.Name, contentDiags)
	}

	var opts []typegraph.Option
	var diags hcl.Diagnostics

	for _, block := range bodyContent.Blocks.OfType("auth") {
		spec, authDiags := parseAuth(block)
		diags = append(diags, authDiags...)
		if !authDiags.HasErrors() {
			opts = append(opts, typegraph.WithAuth(spec))
		}
	}

	rate, rateDiags := parseRate(bodyContent.Blocks)
	diags = append(diags, rateDiags...)
	if rate != nil {
		opts = append(opts, typegraph.WithRate(*rate))
	}

	if policiesAttr, exists := bodyContent.Attributes["policies"]; exists {
		defaults, err := l.resolvePolicies(policiesAttr, &diags)
		if err != nil {
			return nil, fmt.Errorf("typegraph %q: %w", parsed.Name, err)
		}
		opts = append(opts, typegraph.WithDefaultPolicies(defaults...))
	}

	funcs := make(map[string]*funcdef.Func)
	var order []string
	for _, block := range bodyContent.Blocks.OfType("func") {
		name := block.Labels[0]
		fn, err := l.buildFunc(block, &diags)
		if err != nil {
			return nil, fmt.Errorf("typegraph %q: func %q: %w", parsed.Name, name, err)
		}
		if fn != nil {
			funcs[name] = fn
			order = append(order, name)
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("typegraph %q: %w", parsed.Name, diags)
	}

	return typegraph.Build(ctx, parsed.Name, func(g *typegraph.Graph) error {
		// Expose one batch per block so declaration order survives.
		for _, name := range order {
			if err := g.Expose(ctx, map[string]*funcdef.Func{name: funcs[name]}); err != nil {
				return err
			}
		}
		return nil
	}, opts...)
}

// buildFunc translates one 'func' block into a binding. It returns nil with
// recorded diagnostics when the block's shape is invalid.
func (l *Loader) buildFunc(block *hcl.Block, diags *hcl.Diagnostics) (*funcdef.Func, error) {
	bodyContent, contentDiags := block.Body.Content(funcBodySchema)
	*diags = append(*diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, nil
	}

	moduleAttr, exists := bodyContent.Attributes["module"]
	if !exists {
		missingItemRange := block.Body.MissingItemRange()
		*diags = append(*diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'module' attribute",
			Detail:   "The 'module' attribute is required for all func blocks.",
			Subject:  &missingItemRange,
		})
		return nil, nil
	}
	var module string
	*diags = append(*diags, gohcl.DecodeExpression(moduleAttr.Expr, nil, &module)...)

	runtime := deno.RuntimeName
	if runtimeAttr, exists := bodyContent.Attributes["runtime"]; exists {
		*diags = append(*diags, gohcl.DecodeExpression(runtimeAttr.Expr, nil, &runtime)...)
	}

	export := "default"
	if exportAttr, exists := bodyContent.Attributes["export"]; exists {
		*diags = append(*diags, gohcl.DecodeExpression(exportAttr.Expr, nil, &export)...)
	}

	inputFields, inputDiags := parseFields(bodyContent.Blocks, "input")
	*diags = append(*diags, inputDiags...)

	outputFields, outputDiags := parseFields(bodyContent.Blocks, "output")
	*diags = append(*diags, outputDiags...)

	if diags.HasErrors() {
		return nil, nil
	}

	fn, err := funcdef.New(
		typedef.Struct(inputFields...),
		typedef.Struct(outputFields...),
		materializer.Materializer{Runtime: runtime, Module: module, Export: export},
	)
	if err != nil {
		return nil, err
	}

	if weightAttr, exists := bodyContent.Attributes["weight"]; exists {
		var weight float64
		if evalDiags := gohcl.DecodeExpression(weightAttr.Expr, nil, &weight); evalDiags.HasErrors() {
			*diags = append(*diags, evalDiags...)
			return nil, nil
		}
		if fn, err = fn.Weighted(weight); err != nil {
			return nil, err
		}
	}

	if policiesAttr, exists := bodyContent.Attributes["policies"]; exists {
		policies, err := l.resolvePolicies(policiesAttr, diags)
		if err != nil {
			return nil, err
		}
		fn = fn.WithPolicies(policies...)
	}

	return fn, nil
}

// resolvePolicies decodes a policies attribute and resolves each name
// against the registry.
func (l *Loader) resolvePolicies(attr *hcl.Attribute, diags *hcl.Diagnostics) ([]policy.Policy, error) {
	var names []string
	if evalDiags := gohcl.DecodeExpression(attr.Expr, nil, &names); evalDiags.HasErrors() {
		*diags = append(*diags, evalDiags...)
		return nil, nil
	}

	policies := make([]policy.Policy, 0, len(names))
	for _, name := range names {
		p, ok := l.reg.Policy(name)
		if !ok {
			return nil, fmt.Errorf("unknown policy %q", name)
		}
		policies = append(policies, p)
	}
	return policies, nil
}
