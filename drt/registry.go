package drt

import (
	"fmt"
	"sort"
	"sync"
)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	processes  = make(map[string]*Rules)
)

// Register registers a rule table under its process name. The table is
// cloned; later changes to r do not affect the registered copy.
//
// Register panics if:
//   - r is nil
//   - r does not validate
//   - a table with the same name is already registered
func Register(r *Rules) {
	if r == nil {
		panic("drt: Register rules is nil")
	}
	if err := r.Validate(); err != nil {
		panic(err)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := processes[r.Process]; dup {
		panic("drt: Register called twice for " + r.Process)
	}
	processes[r.Process] = r.Clone()
}

// Unregister removes a table from the registry.
// This is primarily useful for testing to clean up between tests.
// If the process is not registered, this is a no-op.
func Unregister(process string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(processes, process)
}

// Lookup returns the table registered under process. The returned table is
// a private copy.
func Lookup(process string) (*Rules, error) {
	registryMu.RLock()
	r, ok := processes[process]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownProcess, process)
	}
	return r.Clone(), nil
}

// MustLookup is like Lookup but panics on error.
func MustLookup(process string) *Rules {
	r, err := Lookup(process)
	if err != nil {
		panic(err)
	}
	return r
}

// Processes returns a sorted list of registered process names.
func Processes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(processes))
	for name := range processes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a table with the given name is registered.
func IsRegistered(process string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := processes[process]
	return ok
}
