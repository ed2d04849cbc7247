package recording

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/cmdchain"
	"github.com/gogpu/gpucontext"
)

// TargetFactory creates a fresh recorder for a named target.
type TargetFactory func() cmdchain.Recorder

// targets holds the registered factories. Hardware-backed targets are
// preferred by Default when present.
var (
	registerMu sync.Mutex
	targets    = gpucontext.NewRegistry[cmdchain.Recorder](
		gpucontext.WithPriority("hal", "trace"),
	)
)

func init() {
	Register("trace", func() cmdchain.Recorder {
		return NewRecorder(WithLabel("trace"))
	})
}

// Register registers a recorder factory under name, following the
// database/sql driver pattern:
//
//	func init() {
//	    recording.Register("hal", func() cmdchain.Recorder {
//	        return newHALPass()
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory TargetFactory) {
	registerMu.Lock()
	defer registerMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if targets.Has(name) {
		panic("recording: Register called twice for " + name)
	}
	targets.Register(name, factory)
}

// Unregister removes a target. Unknown names are ignored.
func Unregister(name string) {
	registerMu.Lock()
	defer registerMu.Unlock()
	targets.Unregister(name)
}

// NewTarget creates a recorder for the named target.
func NewTarget(name string) (cmdchain.Recorder, error) {
	if !targets.Has(name) {
		return nil, fmt.Errorf("recording: unknown target %q (forgotten import?)", name)
	}
	r := targets.Get(name)
	if r == nil {
		return nil, fmt.Errorf("recording: target %q returned a nil recorder", name)
	}
	return r, nil
}

// Default creates the preferred registered target and returns it with its
// name. Targets backed by a device ("hal") are preferred over "trace".
func Default() (string, cmdchain.Recorder) {
	name := DefaultName()
	if name == "" {
		return "", nil
	}
	return name, targets.Get(name)
}

// DefaultName returns the name of the target Default would create.
func DefaultName() string {
	return targets.BestName()
}

// Targets returns the registered target names, sorted.
func Targets() []string {
	names := targets.Available()
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a target named name is registered.
func IsRegistered(name string) bool {
	return targets.Has(name)
}
