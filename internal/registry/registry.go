package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/typegridgo/internal/policy"
)

// Registry holds the named policies available to manifest-declared graphs
// for a single application instance.
type Registry struct {
	policies map[string]policy.Policy
}

// New creates a Registry with the built-in allow_all policy pre-registered.
func New() *Registry {
	r := &Registry{policies: make(map[string]policy.Policy)}
	r.RegisterPolicy(policy.AllowAll())
	return r
}

// RegisterPolicy makes a policy resolvable by manifest name. Registering the
// same name twice is a programmer error.
func (r *Registry) RegisterPolicy(p policy.Policy) {
	if _, exists := r.policies[p.Name()]; exists {
		panic(fmt.Sprintf("policy with name '%s' already registered", p.Name()))
	}
	slog.Debug("Registering policy.", "name", p.Name())
	r.policies[p.Name()] = p
}

// Policy resolves a manifest policy name.
func (r *Registry) Policy(name string) (policy.Policy, bool) {
	p, ok := r.policies[name]
	return p, ok
}
