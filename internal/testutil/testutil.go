// Package testutil provides small helpers shared by the package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/typegridgo/internal/funcdef"
	"github.com/vk/typegridgo/internal/policy"
	"github.com/vk/typegridgo/internal/runtimes/deno"
	"github.com/vk/typegridgo/internal/typedef"
)

// NamedPolicy returns a deny-everything policy with the given name, enough
// for tests that only care about policy presence.
func NamedPolicy(t *testing.T, name string) policy.Policy {
	t.Helper()
	p, err := policy.New(name, policy.DeciderFunc(
		func(context.Context, policy.Request) (bool, error) { return false, nil },
	))
	require.NoError(t, err)
	return p
}

// SimpleFunc returns a minimal valid binding: {msg: string} -> {ok: bool},
// materialized by a throwaway deno module.
func SimpleFunc(t *testing.T) *funcdef.Func {
	t.Helper()
	fn, err := funcdef.New(
		typedef.Struct(typedef.Field{Name: "msg", Type: typedef.String()}),
		typedef.Struct(typedef.Field{Name: "ok", Type: typedef.Boolean()}),
		deno.Module("noop.ts").Import("default"),
	)
	require.NoError(t, err)
	return fn
}
