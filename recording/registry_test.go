package recording

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/cmdchain"
)

func TestTraceTargetRegistered(t *testing.T) {
	if !IsRegistered("trace") {
		t.Fatal("trace target should be registered by default")
	}
	rec, err := NewTarget("trace")
	if err != nil {
		t.Fatalf("NewTarget(trace) = %v", err)
	}
	if _, ok := rec.(*Recorder); !ok {
		t.Errorf("trace target is %T, want *Recorder", rec)
	}
}

func TestNewTargetFresh(t *testing.T) {
	a, _ := NewTarget("trace")
	b, _ := NewTarget("trace")
	if a == b {
		t.Error("NewTarget should create a new recorder per call")
	}
}

func TestNewTargetUnknown(t *testing.T) {
	_, err := NewTarget("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown target")
	}
	if want := `recording: unknown target "nonexistent" (forgotten import?)`; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestNewTargetNilRecorder(t *testing.T) {
	Register("broken", func() cmdchain.Recorder { return nil })
	defer Unregister("broken")

	if _, err := NewTarget("broken"); err == nil {
		t.Error("expected error for a factory returning nil")
	}
}

func TestRegisterNilFactory(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil factory")
		}
	}()
	Register("nil", nil)
}

func TestRegisterDuplicate(t *testing.T) {
	factory := func() cmdchain.Recorder { return NewRecorder() }
	Register("dup", factory)
	defer Unregister("dup")

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for duplicate registration")
		}
	}()
	Register("dup", factory)
}

func TestUnregister(t *testing.T) {
	Register("temp", func() cmdchain.Recorder { return NewRecorder() })
	if !IsRegistered("temp") {
		t.Fatal("temp should be registered")
	}

	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("temp should not be registered after Unregister")
	}
	// Unknown names are ignored.
	Unregister("temp")
}

func TestTargetsSorted(t *testing.T) {
	Register("zeta", func() cmdchain.Recorder { return NewRecorder() })
	Register("alpha", func() cmdchain.Recorder { return NewRecorder() })
	defer Unregister("zeta")
	defer Unregister("alpha")

	names := Targets()
	if !slices.IsSorted(names) {
		t.Errorf("Targets() = %v, want sorted", names)
	}
	for _, want := range []string{"alpha", "trace", "zeta"} {
		if !slices.Contains(names, want) {
			t.Errorf("Targets() = %v, missing %q", names, want)
		}
	}
}

func TestDefaultPrefersHAL(t *testing.T) {
	if IsRegistered("hal") {
		t.Skip("hal target registered by another package")
	}
	if got := DefaultName(); got != "trace" {
		t.Errorf("DefaultName() = %q, want trace", got)
	}

	hal := NewRecorder(WithLabel("hal"))
	Register("hal", func() cmdchain.Recorder { return hal })
	defer Unregister("hal")

	name, rec := Default()
	if name != "hal" {
		t.Errorf("Default() name = %q, want hal", name)
	}
	if rec != cmdchain.Recorder(hal) {
		t.Error("Default() should create the hal target")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	var wg sync.WaitGroup
	const n = 20

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("concurrent-%d", i)
			Register(name, func() cmdchain.Recorder { return NewRecorder() })
			if _, err := NewTarget(name); err != nil {
				t.Errorf("NewTarget(%s) = %v", name, err)
			}
			Unregister(name)
		}()
	}
	wg.Wait()
}
