package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/typegridgo/internal/cli"
)

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_LoadsManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `
typegraph "tg" {
  policies = ["allow_all"]

  func "ping" {
    module = "ping.ts"
    input "msg" { type = string }
    output "ok" { type = bool }
  }
}
`
	path := filepath.Join(dir, "tg.hcl")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-log-level", "error", "-log-format", "text", path})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "typegraph tg")
	assert.Contains(t, out.String(), "func ping")
}

func TestRun_BadFlagIsExitError(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-log-format", "xml", "x.hcl"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
