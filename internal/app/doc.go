// Package app wires the manifest loader, the policy registry and the logger
// into a runnable application instance: it loads every typegraph manifest
// under the configured path, finalizes each graph, and reports the exposed
// surface.
package app
