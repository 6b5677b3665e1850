package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Capability is an explicit tag a definition carries to declare what its product can do.
type Capability string

// CapabilityCachePool marks a definition whose product implements the cache pool port.
const CapabilityCachePool Capability = "cache_pool"

// MethodCall is a call recorded on a definition and replayed after construction.
type MethodCall struct {
	Method string
	Args   []any
}

// Definition describes how the registry builds one service.
type Definition struct {
	Class        string
	Args         []any
	Calls        []MethodCall
	Capabilities []Capability

	// Factory builds services registered by the host. Built-in definitions leave it nil.
	Factory func() (any, error)
}

// NewDefinition returns a definition for class with the given constructor arguments.
func NewDefinition(class string, args ...any) *Definition {
	return &Definition{Class: class, Args: args}
}

// WithCapabilities adds capability tags and returns the definition for chaining.
func (d *Definition) WithCapabilities(caps ...Capability) *Definition {
	for _, c := range caps {
		if !d.Provides(c) {
			d.Capabilities = append(d.Capabilities, c)
		}
	}
	return d
}

// WithFactory sets the factory and returns the definition for chaining.
func (d *Definition) WithFactory(factory func() (any, error)) *Definition {
	d.Factory = factory
	return d
}

// Provides reports whether the definition carries the capability.
func (d *Definition) Provides(c Capability) bool {
	return slices.Contains(d.Capabilities, c)
}

// AddMethodCall appends a method call and returns the definition for chaining.
func (d *Definition) AddMethodCall(method string, args ...any) *Definition {
	d.Calls = append(d.Calls, MethodCall{Method: method, Args: args})
	return d
}

// ReplaceArgument overwrites the constructor argument at index.
func (d *Definition) ReplaceArgument(index int, value any) error {
	if index < 0 || index >= len(d.Args) {
		err := zerr.With(zerr.Wrap(ErrArgumentOutOfRange, "cannot replace argument"), "index", index)
		return zerr.With(err, "class", d.Class)
	}
	d.Args[index] = value
	return nil
}

// Clone returns a copy whose argument, call and capability slices are independent.
func (d *Definition) Clone() *Definition {
	c := &Definition{
		Class:        d.Class,
		Args:         slices.Clone(d.Args),
		Capabilities: slices.Clone(d.Capabilities),
		Factory:      d.Factory,
	}
	for _, call := range d.Calls {
		c.Calls = append(c.Calls, MethodCall{Method: call.Method, Args: slices.Clone(call.Args)})
	}
	return c
}
