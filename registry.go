package minlog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrModuleBitsExhausted is returned by Register once all 32 module bit
// positions are taken.
var ErrModuleBitsExhausted = errors.New("minlog: module bit positions exhausted")

// Registry assigns bit positions to integrator-defined modules, starting above
// the reserved built-in range, so independently developed components cannot
// silently collide on a bit. Registration is a setup-time concern; the
// registry is safe for concurrent use but a Module value, once assigned, is
// just a bitmask like any other.
type Registry struct {
	mu     sync.Mutex
	byName map[string]Module
	byBit  map[Module]string
	next   uint
}

// NewRegistry returns a registry pre-populated with the built-in module names.
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]Module),
		byBit:  make(map[Module]string),
		next:   ReservedModuleBits,
	}
	r.byName["paging"] = ModulePaging
	r.byBit[ModulePaging] = "paging"
	return r
}

// Register assigns the next free bit position to name and returns it.
// Registering an already-known name returns the existing assignment, so
// Register is idempotent per name.
func (r *Registry) Register(name string) (Module, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "all" {
		return 0, fmt.Errorf("minlog: invalid module name %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.byName[name]; ok {
		return m, nil
	}
	if r.next >= 32 {
		return 0, ErrModuleBitsExhausted
	}
	m := Module(1) << r.next
	r.next++
	r.byName[name] = m
	r.byBit[m] = name
	return m, nil
}

// Lookup resolves a registered module name.
func (r *Registry) Lookup(name string) (Module, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// Name resolves a single-bit module value back to its registered name.
func (r *Registry) Name(m Module) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.byBit[m]
	return name, ok
}

// Names returns all registered names in bit order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.byBit))
	for bit := uint(0); bit < 32; bit++ {
		if name, ok := r.byBit[Module(1)<<bit]; ok {
			out = append(out, name)
		}
	}
	return out
}
