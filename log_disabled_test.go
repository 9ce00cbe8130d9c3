//go:build minlog_disabled

package minlog

import "testing"

func TestDisabledOpsEmitNothing(t *testing.T) {
	sink := &recordSink{}
	h, err := New(sink, ModuleAll, PriorityAll)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	h.Error(ModulePaging, "m")
	h.Warn(ModulePaging, "m")
	h.Info(ModulePaging, "m")
	h.Debug(ModulePaging, "m")
	h.Trace(ModulePaging, "m")
	h.Log(ModulePaging, PriorityError, "m")
	if n := len(sink.snapshot()); n != 0 {
		t.Fatalf("disabled build must emit nothing from filtered ops, got %d", n)
	}
}

func TestDisabledRawWriteStillWorks(t *testing.T) {
	sink := &recordSink{}
	h, err := New(sink, 0, 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := h.Write("x=%d", 5); err != nil {
		t.Fatalf("write: %v", err)
	}
	calls := sink.snapshot()
	if len(calls) != 1 || calls[0] != "x=5" {
		t.Fatalf("raw write must survive disabled builds, got %q", calls)
	}
}
