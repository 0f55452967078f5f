package waylay

import "sort"

// registryEntry pairs a handler with its provenance: entries carried over
// by a copy-on-write fork are marked inherited so lifecycle sync can tell
// them apart from entries registered on this registry's owner directly.
type registryEntry struct {
	handler   Handler
	inherited bool
}

// registry maps intercepted method names to their handlers. A name appears
// at most once; put overwrites. Each registry is owned by exactly one
// class or object scope; subclasses read an ancestor's registry by
// reference until they fork their own copy.
type registry struct {
	entries map[string]registryEntry
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]registryEntry)}
}

// put upserts a handler for name. An upsert always counts as a direct
// registration, even when it replaces a fork-inherited entry.
func (r *registry) put(name string, h Handler) {
	r.entries[name] = registryEntry{handler: h}
}

// get returns the handler for name, if registered.
func (r *registry) get(name string) (Handler, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.handler, true
}

// ownEntry returns the handler for name only when the entry was
// registered on this registry's owner directly, not carried over by a
// fork. The ancestor that registered a fork-inherited entry still
// forwards it on its own surface.
func (r *registry) ownEntry(name string) (Handler, bool) {
	e, ok := r.entries[name]
	if !ok || e.inherited {
		return nil, false
	}
	return e.handler, true
}

// delete removes name, reporting whether it was present.
func (r *registry) delete(name string) bool {
	if _, ok := r.entries[name]; !ok {
		return false
	}
	delete(r.entries, name)
	return true
}

// names returns the registered names in sorted order.
func (r *registry) names() []string {
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *registry) empty() bool { return len(r.entries) == 0 }

func (r *registry) size() int { return len(r.entries) }

// fork returns an independent copy with every entry marked inherited.
// Mutating the fork never affects the original, and vice versa.
func (r *registry) fork() *registry {
	out := newRegistry()
	for name, e := range r.entries {
		e.inherited = true
		out.entries[name] = e
	}
	return out
}
