// Package registry provides the glue between declarative graph manifests and
// compiled Go capabilities.
//
// A manifest names its policies by string (e.g. `policies = ["allow_all"]`).
// The Registry stores the mapping from those names to the policy.Policy
// values that implement them, so the loader can resolve a manifest without
// any process-wide registration. The built-in allow_all policy is
// pre-registered in every instance.
package registry
