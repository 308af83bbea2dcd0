package export

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes an exporter available under name. It is meant to be
// called from a backend's init:
//
//	func init() {
//	    export.Register("gds", func() export.Exporter { return New() })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("export: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a format. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates an exporter for a registered format.
func New(name string) (Exporter, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("export: unknown format %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustNew is like New but panics on error.
func MustNew(name string) Exporter {
	e, err := New(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
