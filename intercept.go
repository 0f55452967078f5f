package waylay

// Intercept registers handler for each named instance method. Arguments
// are validated before any mutation: a nil handler or an empty name set
// fails without side effects.
//
// For each name the registry entry is upserted; a forwarder is installed
// only when the name currently resolves to a method body somewhere in
// the class chain, so a subclass can re-wrap an inherited interception
// without redefining the body. Names resolving nowhere stay registered
// and activate the moment Define adds them (lazy activation). Re-running
// with a new handler replaces the forwarder — handlers never stack.
func (c *Class) Intercept(handler Handler, names ...string) error {
	if handler == nil {
		return ErrNilHandler
	}
	if len(names) == 0 {
		return ErrNoNames
	}

	reg := c.ownedRegistry()
	for _, name := range names {
		reg.put(name, handler)
		if c.RespondsTo(name) {
			c.installForwarder(name, handler)
		}
	}
	emitInterceptRegistered(c.name, scopeClass, len(names))
	return nil
}

// Release removes interception for the given names, or for every
// currently intercepted name when called with none. It returns the names
// actually released, in sorted order for the zero-argument form. Names
// that were never intercepted are skipped, not errors.
//
// A class reading an inherited registry forks its own copy before
// removing, so the ancestor's interception is untouched.
func (c *Class) Release(names ...string) []string {
	eff := c.effectiveRegistry()
	if eff == nil || eff.empty() {
		return nil
	}

	targets := names
	if len(targets) == 0 {
		targets = eff.names()
	}

	// Fork only when something will actually be removed.
	hit := false
	for _, name := range targets {
		if _, ok := eff.get(name); ok {
			hit = true
			break
		}
	}
	if !hit {
		return nil
	}

	reg := c.ownedRegistry()
	var released []string
	for _, name := range targets {
		if !reg.delete(name) {
			continue
		}
		released = append(released, name)
		if c.surf != nil && c.surf.remove(name) {
			emitForwarderRemoved(c.name, scopeClass, name)
		}
	}
	if len(released) > 0 {
		emitInterceptReleased(c.name, scopeClass, len(released))
	}
	return released
}

// Intercepted reports interception state. With no arguments it reports
// whether any name is registered; with arguments it reports whether every
// named method is registered. A class with no registry anywhere in its
// chain reports false.
func (c *Class) Intercepted(names ...string) bool {
	reg := c.effectiveRegistry()
	if reg == nil {
		return false
	}
	if len(names) == 0 {
		return !reg.empty()
	}
	for _, name := range names {
		if _, ok := reg.get(name); !ok {
			return false
		}
	}
	return true
}

// Receiver plumbing; see Apply, Remove and Query in api.go.

func (c *Class) applyIntercept(h Handler, names []string) error {
	return c.Intercept(h, names...)
}

func (c *Class) removeIntercept(names []string) []string {
	return c.Release(names...)
}

func (c *Class) queryIntercept(names []string) bool {
	return c.Intercepted(names...)
}
