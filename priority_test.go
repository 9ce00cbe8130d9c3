package minlog

import "testing"

func TestPriorityString(t *testing.T) {
	cases := map[Priority]string{
		PriorityError: "ERROR",
		PriorityWarn:  "WARN",
		PriorityInfo:  "INFO",
		PriorityDebug: "DEBUG",
		PriorityTrace: "TRACE",
		PriorityAll:   "ALL",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Fatalf("%#x: expected %q, got %q", uint32(p), want, got)
		}
	}
}

func TestPriorityBitsDistinct(t *testing.T) {
	bits := []Priority{PriorityError, PriorityWarn, PriorityInfo, PriorityDebug, PriorityTrace}
	var mask Priority
	for _, p := range bits {
		if mask&p != 0 {
			t.Fatalf("priority %v overlaps earlier bits", p)
		}
		mask |= p
	}
	if mask != 0x1f {
		t.Fatalf("built-in priorities should fill the reserved range, got %#x", uint32(mask))
	}
}

func TestParsePriorityMask(t *testing.T) {
	mask, err := ParsePriorityMask("error|trace")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if mask != PriorityError|PriorityTrace {
		t.Fatalf("expected error|trace, got %#x", uint32(mask))
	}

	mask, err = ParsePriorityMask("ALL")
	if err != nil {
		t.Fatalf("parse all: %v", err)
	}
	if mask != PriorityAll {
		t.Fatalf("expected all bits, got %#x", uint32(mask))
	}

	if _, err := ParsePriorityMask("error|verbose"); err == nil {
		t.Fatalf("expected error for unknown priority name")
	}
}
