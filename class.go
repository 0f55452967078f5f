package waylay

// Method is an instance method body. It receives the instance it was
// invoked on and the call-site arguments.
type Method func(self *Object, args ...any) (any, error)

// Class is a node in the class hierarchy: a name, an optional superclass,
// and a method dictionary. Interception state (registry and surface) is
// created lazily and only on the classes that use it.
//
// Classes follow a single-threaded mutation model: define methods and
// register interception at setup time, dispatch afterwards. The package
// performs no locking.
type Class struct {
	name    string
	super   *Class
	methods map[string]Method

	// reg is non-nil only once this class owns a registry of its own,
	// either created empty or forked copy-on-write from an ancestor.
	reg *registry

	// surf is created on the first forwarder installation and is never
	// destroyed afterwards, even when emptied.
	surf *surface
}

// NewClass creates a root class with no superclass.
func NewClass(name string) *Class {
	return &Class{
		name:    name,
		methods: make(map[string]Method),
	}
}

// Subclass creates a new class with c as its superclass. The subclass
// starts with an empty method dictionary and inherits c's interception
// registry by reference until it first intercepts or releases itself.
func (c *Class) Subclass(name string) *Class {
	sub := NewClass(name)
	sub.super = c
	return sub
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Superclass returns the superclass, or nil for a root class.
func (c *Class) Superclass() *Class { return c.super }

// New creates an instance of c.
func (c *Class) New() *Object {
	return &Object{class: c}
}

// Define adds or replaces the instance method named name. This is the
// "method defined" notification the interception mechanism consumes: if
// the name is registered for interception on this class, the forwarder is
// (re)installed immediately, which is what makes interception declared
// before the method existed take effect retroactively.
func (c *Class) Define(name string, m Method) {
	c.methods[name] = m
	emitMethodDefined(c.name, name)

	if c.reg == nil {
		// An inherited registry installs forwarders on its owner, not
		// here; installing on both would run the handler twice per call.
		return
	}
	// The same goes for fork-inherited entries: the ancestor that
	// registered them still forwards on its own surface.
	if h, ok := c.reg.ownEntry(name); ok {
		c.installForwarder(name, h)
	}
}

// Undefine removes the instance method named name. The forwarder (if any)
// is removed with it; the registry entry survives, so a later Define of
// the same name restores interception without a fresh Intercept call.
// Undefining an unknown name is a no-op.
func (c *Class) Undefine(name string) {
	if _, ok := c.methods[name]; !ok {
		return
	}
	delete(c.methods, name)
	emitMethodRemoved(c.name, name)

	if c.surf != nil && c.surf.remove(name) {
		emitForwarderRemoved(c.name, scopeClass, name)
	}
}

// Defines reports whether name is in this class's own method dictionary,
// ignoring inherited definitions.
func (c *Class) Defines(name string) bool {
	_, ok := c.methods[name]
	return ok
}

// RespondsTo reports whether name resolves to a method body anywhere in
// the class chain.
func (c *Class) RespondsTo(name string) bool {
	_, ok := c.lookupMethod(name)
	return ok
}

// IsSubclassOf reports whether c is other or a descendant of other.
func (c *Class) IsSubclassOf(other *Class) bool {
	for k := c; k != nil; k = k.super {
		if k == other {
			return true
		}
	}
	return false
}

// lookupMethod finds the most specific body for name in the class chain.
func (c *Class) lookupMethod(name string) (Method, bool) {
	for k := c; k != nil; k = k.super {
		if m, ok := k.methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// effectiveRegistry returns the registry this class reads through: its own
// if it has one, otherwise the nearest ancestor's. Nil when no class in
// the chain has opted into interception.
func (c *Class) effectiveRegistry() *registry {
	for k := c; k != nil; k = k.super {
		if k.reg != nil {
			return k.reg
		}
	}
	return nil
}

// ownedRegistry returns a registry this class may mutate, creating or
// forking one on first use. Forking copies the inherited entries so the
// ancestor is never affected (copy-on-write).
func (c *Class) ownedRegistry() *registry {
	if c.reg != nil {
		return c.reg
	}
	if base := c.effectiveRegistry(); base != nil {
		c.reg = base.fork()
		emitRegistryForked(c.name, c.reg.size())
	} else {
		c.reg = newRegistry()
	}
	return c.reg
}

// installForwarder activates interception of name on this class's surface,
// creating the surface on first use.
func (c *Class) installForwarder(name string, h Handler) {
	if c.surf == nil {
		c.surf = newSurface()
	}
	c.surf.install(name, h)
	emitForwarderInstalled(c.name, scopeClass, name)
}
