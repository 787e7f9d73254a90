package format

import (
	"sort"
	"sync"
)

// registry is the process-wide format name registry.
var (
	registry = make(map[string]Validator)
	mu       sync.RWMutex
)

// Register adds v to the registry under its FormatName, replacing any
// previously registered validator with the same name. Nil validators are
// ignored.
func Register(v Validator) {
	if v == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[v.FormatName()] = v
}

// Lookup returns the validator registered under name, and whether one exists.
func Lookup(name string) (Validator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := registry[name]
	return v, ok
}

// Names returns the sorted names of all registered validators.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
