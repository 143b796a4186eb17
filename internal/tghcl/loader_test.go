package tghcl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/typegridgo/internal/policy"
	"github.com/vk/typegridgo/internal/registry"
	"github.com/vk/typegridgo/internal/typedef"
	"github.com/vk/typegridgo/internal/typegraph"
)

const contactManifest = `
typegraph "biscuicuits" {
  auth "github" {
    protocol = "oauth2"
  }

  rate {
    window_limit = 2000
    window_sec   = 60
    query_limit  = 200
  }

  func "contact" {
    module   = "send_in_blue_send.ts"
    export   = "default"
    weight   = 2
    policies = ["allow_all"]

    input "name" { type = string }
    input "email" {
      type   = string
      format = "email"
    }
    input "subject" {
      type = string
      raw  = "Nouveau message"
    }
    input "message" { type = string }
    input "apiKey" {
      type   = string
      secret = true
    }
    input "from" {
      type   = string
      secret = true
    }
    input "to" {
      type   = string
      secret = true
    }

    output "success" { type = bool }
    output "error" {
      type     = string
      optional = true
    }
  }
}
`

func parseOne(t *testing.T, manifest string) *typegraph.Snapshot {
	t.Helper()
	snaps, err := NewLoader(nil).Parse(context.Background(), []byte(manifest), "test.hcl")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	return snaps[0]
}

func TestParse_ContactManifest(t *testing.T) {
	t.Parallel()

	snap := parseOne(t, contactManifest)
	assert.Equal(t, "biscuicuits", snap.Name)

	require.NotNil(t, snap.Rate)
	assert.Equal(t, typegraph.Rate{WindowLimit: 2000, WindowSec: 60, QueryLimit: 200}, *snap.Rate)

	require.Len(t, snap.Auths, 1)
	assert.Equal(t, "github", snap.Auths[0].Provider)

	contact, ok := snap.Function("contact")
	require.True(t, ok)
	assert.Equal(t, float64(2), contact.Func.Weight())
	assert.Equal(t, []string{policy.AllowAllName}, contact.Policies)
	assert.Equal(t, "deno:send_in_blue_send.ts#default", contact.Func.Materializer().String())

	fields := contact.Func.Input().Fields()
	require.Len(t, fields, 7)
	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, typedef.FormatEmail, fields[1].Type.Format())
	raw, hasRaw := fields[2].Type.RawDefault()
	require.True(t, hasRaw)
	assert.Equal(t, "Nouveau message", raw.AsString())
	assert.True(t, fields[4].Type.IsSecret())

	outFields := contact.Func.Output().Fields()
	require.Len(t, outFields, 2)
	assert.Equal(t, typedef.KindBoolean, outFields[0].Type.Kind())
	assert.Equal(t, typedef.KindOptional, outFields[1].Type.Kind())

	assert.Equal(t, []string{"contact.apiKey", "contact.from", "contact.to"}, snap.Secrets)
}

func TestParse_GraphDefaultPolicies(t *testing.T) {
	t.Parallel()

	snap := parseOne(t, `
typegraph "tg" {
  policies = ["allow_all"]

  func "ping" {
    module = "ping.ts"
    input "msg" { type = string }
    output "ok" { type = bool }
  }
}
`)
	ping, ok := snap.Function("ping")
	require.True(t, ok)
	assert.Equal(t, []string{policy.AllowAllName}, ping.Policies)
}

func TestParse_CustomPolicyFromRegistry(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	team, err := policy.New("team_only", policy.DeciderFunc(
		func(context.Context, policy.Request) (bool, error) { return false, nil },
	))
	require.NoError(t, err)
	reg.RegisterPolicy(team)

	snaps, err := NewLoader(reg).Parse(context.Background(), []byte(`
typegraph "tg" {
  func "ping" {
    module   = "ping.ts"
    policies = ["team_only"]
    input "msg" { type = string }
    output "ok" { type = bool }
  }
}
`), "test.hcl")
	require.NoError(t, err)
	ping, ok := snaps[0].Function("ping")
	require.True(t, ok)
	assert.Equal(t, []string{"team_only"}, ping.Policies)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name: "unknown policy",
			manifest: `
typegraph "tg" {
  func "ping" {
    module   = "ping.ts"
    policies = ["nope"]
    input "msg" { type = string }
  }
}`,
			wantErr: `unknown policy "nope"`,
		},
		{
			name: "unpoliced function",
			manifest: `
typegraph "tg" {
  func "ping" {
    module = "ping.ts"
    input "msg" { type = string }
  }
}`,
			wantErr: "no policy",
		},
		{
			name: "secret on bool field",
			manifest: `
typegraph "tg" {
  policies = ["allow_all"]
  func "ping" {
    module = "ping.ts"
    input "flag" {
      type   = bool
      secret = true
    }
  }
}`,
			wantErr: "Invalid descriptor",
		},
		{
			name: "duplicate input",
			manifest: `
typegraph "tg" {
  policies = ["allow_all"]
  func "ping" {
    module = "ping.ts"
    input "msg" { type = string }
    input "msg" { type = string }
  }
}`,
			wantErr: "Duplicate input definition",
		},
		{
			name: "unsupported type keyword",
			manifest: `
typegraph "tg" {
  policies = ["allow_all"]
  func "ping" {
    module = "ping.ts"
    input "n" { type = number }
  }
}`,
			wantErr: "Unsupported type",
		},
		{
			name: "missing module",
			manifest: `
typegraph "tg" {
  policies = ["allow_all"]
  func "ping" {
    input "msg" { type = string }
  }
}`,
			wantErr: "Missing 'module' attribute",
		},
		{
			name: "zero rate window",
			manifest: `
typegraph "tg" {
  policies = ["allow_all"]
  rate {
    window_limit = 0
    window_sec   = 60
    query_limit  = 200
  }
}`,
			wantErr: "invalid rate limit",
		},
		{
			name: "duplicate rate block",
			manifest: `
typegraph "tg" {
  policies = ["allow_all"]
  rate {
    window_limit = 1
    window_sec   = 1
    query_limit  = 1
  }
  rate {
    window_limit = 1
    window_sec   = 1
    query_limit  = 1
  }
}`,
			wantErr: `Duplicate "rate" block`,
		},
		{
			name: "auth without protocol",
			manifest: `
typegraph "tg" {
  policies = ["allow_all"]
  auth "github" {}
}`,
			wantErr: "Missing 'protocol' attribute",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(nil).Parse(ctx, []byte(tt.manifest), "test.hcl")
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParse_MultipleTypegraphsPerFile(t *testing.T) {
	t.Parallel()

	snaps, err := NewLoader(nil).Parse(context.Background(), []byte(`
typegraph "one" {
  policies = ["allow_all"]
  func "a" {
    module = "a.ts"
    input "x" { type = string }
  }
}

typegraph "two" {
  policies = ["allow_all"]
}
`), "test.hcl")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "one", snaps[0].Name)
	assert.Equal(t, "two", snaps[1].Name)
}
