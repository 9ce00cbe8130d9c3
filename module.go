package minlog

import (
	"fmt"
	"strings"
)

// Module tags the logical subsystem a message originates from. Like Priority,
// modules are bit values so a filter mask can select any subset of subsystems.
type Module uint32

// Built-in modules. Integrators must not reuse these bit positions for custom
// modules; allocate custom bits through a Registry instead.
const (
	ModulePaging Module = 1 << iota

	// ModuleAll passes every module, built-in or custom.
	ModuleAll Module = ^Module(0)
)

// ReservedModuleBits is the number of low bit positions claimed by the
// built-in modules. Registry-assigned modules start at 1 << ReservedModuleBits.
const ReservedModuleBits = 1

// String names built-in modules; custom values render as a hex mask.
func (m Module) String() string {
	switch m {
	case ModulePaging:
		return "paging"
	case ModuleAll:
		return "all"
	default:
		return fmt.Sprintf("MODULE(%#x)", uint32(m))
	}
}

// ParseModuleMask builds a filter mask from a "|"-separated list of module
// names. Built-in names are always recognized; custom names are resolved
// through reg when it is non-nil. The name "all" selects every module.
func ParseModuleMask(s string, reg *Registry) (Module, error) {
	var mask Module
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "paging":
			mask |= ModulePaging
		case "all":
			mask |= ModuleAll
		default:
			if reg != nil {
				if m, ok := reg.Lookup(part); ok {
					mask |= m
					continue
				}
			}
			return 0, fmt.Errorf("unknown module %q", part)
		}
	}
	return mask, nil
}
