package minlog

import (
	"fmt"
	"strings"
)

// Priority tags a message's severity. Priorities are independent bits, not an
// ordered scale, so a filter mask can select an arbitrary subset (for example
// PriorityError|PriorityTrace without PriorityWarn).
type Priority uint32

// Built-in priorities. Integrators defining custom priorities must not reuse
// these bit positions; see ReservedPriorityBits.
const (
	PriorityError Priority = 1 << iota
	PriorityWarn
	PriorityInfo
	PriorityDebug
	PriorityTrace

	// PriorityAll passes every priority, built-in or custom.
	PriorityAll Priority = ^Priority(0)
)

// ReservedPriorityBits is the number of low bit positions claimed by the
// built-in priorities. Custom priority values start at 1 << ReservedPriorityBits.
const ReservedPriorityBits = 5

// String returns the literal used in decorated-message prefixes. Multi-bit or
// custom values render as a hex mask.
func (p Priority) String() string {
	switch p {
	case PriorityError:
		return "ERROR"
	case PriorityWarn:
		return "WARN"
	case PriorityInfo:
		return "INFO"
	case PriorityDebug:
		return "DEBUG"
	case PriorityTrace:
		return "TRACE"
	case PriorityAll:
		return "ALL"
	default:
		return fmt.Sprintf("PRIORITY(%#x)", uint32(p))
	}
}

// ParsePriorityMask builds a filter mask from a "|"-separated list of
// priority names, for example "error|trace". The name "all" selects every
// priority. Names are case-insensitive.
func ParsePriorityMask(s string) (Priority, error) {
	var mask Priority
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "error":
			mask |= PriorityError
		case "warn", "warning":
			mask |= PriorityWarn
		case "info":
			mask |= PriorityInfo
		case "debug":
			mask |= PriorityDebug
		case "trace":
			mask |= PriorityTrace
		case "all":
			mask |= PriorityAll
		default:
			return 0, fmt.Errorf("unknown priority %q", part)
		}
	}
	return mask, nil
}
