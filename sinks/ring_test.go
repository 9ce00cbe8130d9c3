package sinks

import (
	"bytes"
	"testing"
)

func TestRingUnderCapacity(t *testing.T) {
	r := Ring(32)
	if err := r.Emit([]byte("abc")); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := r.Emit([]byte("def")); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if got := r.Snapshot(); !bytes.Equal(got, []byte("abcdef")) {
		t.Fatalf("expected abcdef, got %q", got)
	}
}

func TestRingWraparound(t *testing.T) {
	r := Ring(8)
	for _, s := range []string{"0123", "4567", "89ab"} {
		if err := r.Emit([]byte(s)); err != nil {
			t.Fatalf("emit: %v", err)
		}
	}
	// 12 bytes through an 8-byte ring: the oldest 4 are gone.
	if got := r.Snapshot(); !bytes.Equal(got, []byte("456789ab")) {
		t.Fatalf("expected 456789ab, got %q", got)
	}
}

func TestRingOversizedEmit(t *testing.T) {
	r := Ring(4)
	if err := r.Emit([]byte("0123456789")); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if got := r.Snapshot(); !bytes.Equal(got, []byte("6789")) {
		t.Fatalf("expected tail 6789, got %q", got)
	}
}

func TestRingReset(t *testing.T) {
	r := Ring(8)
	_ = r.Emit([]byte("abcd"))
	r.Reset()
	if got := r.Snapshot(); len(got) != 0 {
		t.Fatalf("expected empty snapshot after reset, got %q", got)
	}
	_ = r.Emit([]byte("ef"))
	if got := r.Snapshot(); !bytes.Equal(got, []byte("ef")) {
		t.Fatalf("expected ef, got %q", got)
	}
}
