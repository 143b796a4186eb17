// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package tghcl loads typegraph definitions from HCL manifests.
//
// A manifest declares one or more `typegraph` blocks; each carries optional
// `auth` and `rate` blocks plus one `func` block per exposed function, whose
// `input`/`output` blocks compose the type descriptors:
//
//	typegraph "biscuicuits" {
//	  auth "github" {
//	    protocol = "oauth2"
//	  }
//
//	  rate {
//	    window_limit = 2000
//	    window_sec   = 60
//	    query_limit  = 200
//	  }
//
//	  func "contact" {
//	    module   = "send_in_blue_send.ts"
//	    export   = "default"
//	    weight   = 2
//	    policies = ["allow_all"]
//
//	    input "name" { type = string }
//	    input "subject" {
//	      type = string
//	      raw  = "Nouveau message"
//	    }
//	    input "apiKey" {
//	      type   = string
//	      secret = true
//	    }
//
//	    output "success" { type = bool }
//	    output "error" {
//	      type     = string
//	      optional = true
//	    }
//	  }
//	}
//
// Policy names are resolved against a registry.Registry, keeping the mapping
// from manifest strings to compiled Go capabilities explicit per loader.
// Manifests are literal-only: attribute expressions are evaluated with a nil
// context, so no variables or functions are available.
package tghcl
