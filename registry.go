package executor

import (
	"errors"
	"fmt"
)

// Factory builds a command. It is called once by [Registry.Load].
type Factory func() (*Command, error)

// Registry is the table of known commands. Commands are registered explicitly, usually from main
// or package init functions, and instantiated together with [Registry.Load].
//
// A Registry is not safe for concurrent registration.
type Registry struct {
	entries []registration
	names   map[string]struct{}
}

type registration struct {
	name    string
	factory Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds the factory for the command identified by name. It panics if name is empty, f is
// nil, or name is already registered.
func (r *Registry) Register(name string, f Factory) {
	if name == "" {
		panic("executor: register with empty name")
	}
	if f == nil {
		panic(fmt.Sprintf("executor: register %q with nil factory", name))
	}
	if _, exists := r.names[name]; exists {
		panic(fmt.Sprintf("executor: command %q already registered", name))
	}
	r.names[name] = struct{}{}
	r.entries = append(r.entries, registration{name: name, factory: f})
}

// Len returns the number of registered factories.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Load instantiates every registered command, in registration order, and validates the result.
// It either returns every command or none: each failed factory and each invalid definition is
// reported as a [DiscoveryError], joined into the returned error.
func (r *Registry) Load() ([]*Command, error) {
	var errs []error
	commands := make([]*Command, 0, len(r.entries))
	for _, e := range r.entries {
		c, err := instantiate(e)
		if err != nil {
			errs = append(errs, &DiscoveryError{Name: e.name, Err: err})
			continue
		}
		commands = append(commands, c)
	}
	if err := validateCommands(commands); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return commands, nil
}

func instantiate(e registration) (c *Command, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("factory panicked: %v", r)
		}
	}()
	c, err = e.factory()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("factory returned no command")
	}
	return c, nil
}
