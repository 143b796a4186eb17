// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package auth defines the identity-provider specs attached to a graph.
//
// Specs are plain values handed to the graph at construction time; there is
// deliberately no process-wide provider registry. Credential verification
// against a spec is the serving runtime's responsibility.
package auth

// Protocol names the authentication protocol a provider speaks.
type Protocol string

const (
	OAuth2 Protocol = "oauth2"
	JWT    Protocol = "jwt"
	Basic  Protocol = "basic"
)

// Spec is a named external identity-provider reference.
type Spec struct {
	// Provider is the unique provider name within one graph, e.g. "github".
	Provider string

	// Protocol selects how the serving runtime verifies credentials.
	Protocol Protocol

	// Data carries protocol-specific settings (endpoints, scopes, ...),
	// opaque to the graph core.
	Data map[string]string
}

// GitHub returns the OAuth2 spec for GitHub's hosted endpoints.
func GitHub() Spec {
	return Spec{
		Provider: "github",
		Protocol: OAuth2,
		Data: map[string]string{
			"authorize_url":    "https://github.com/login/oauth/authorize",
			"access_token_url": "https://github.com/login/oauth/access_token",
			"profile_url":      "https://api.github.com/user",
			"scopes":           "openid profile email",
		},
	}
}
