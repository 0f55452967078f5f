package waylay

// Object is an instance of a Class: a slot map for state plus an optional
// override scope holding interception that applies to this one instance
// only.
type Object struct {
	class *Class
	slots map[string]any

	// native holds the Go value behind an instance created through a
	// Wrap class; nil otherwise.
	native any

	// scope sits between the object and its class in resolution order.
	// Created lazily by the first Apply on this object.
	scope *objectScope
}

// objectScope is the per-object analogue of a class's registry/surface
// pair. Unlike class registries it is never inherited or forked: each
// scope belongs to exactly one object.
type objectScope struct {
	reg  *registry
	surf *surface
}

// Class returns the object's class.
func (o *Object) Class() *Class { return o.class }

// Slot returns the named slot value, or nil when unset.
func (o *Object) Slot(name string) any {
	if o.slots == nil {
		return nil
	}
	return o.slots[name]
}

// SetSlot stores a slot value on the object.
func (o *Object) SetSlot(name string, v any) {
	if o.slots == nil {
		o.slots = make(map[string]any)
	}
	o.slots[name] = v
}

// ownScope returns the object's override scope, creating it on first use.
func (o *Object) ownScope() *objectScope {
	if o.scope == nil {
		o.scope = &objectScope{reg: newRegistry()}
		emitScopeCreated(o.class.name)
	}
	return o.scope
}

// Receiver plumbing; see Apply, Remove and Query in api.go.

// applyIntercept registers handler in the object's own scope. A forwarder
// is installed when the name resolves to a body anywhere in the class
// chain (the scope has no method dictionary of its own to consult).
// Sibling instances and the class are unaffected.
func (o *Object) applyIntercept(h Handler, names []string) error {
	if h == nil {
		return ErrNilHandler
	}
	if len(names) == 0 {
		return ErrNoNames
	}

	sc := o.ownScope()
	for _, name := range names {
		sc.reg.put(name, h)
		if o.class.RespondsTo(name) {
			if sc.surf == nil {
				sc.surf = newSurface()
			}
			sc.surf.install(name, h)
			emitForwarderInstalled(o.class.name, scopeObject, name)
		}
	}
	emitInterceptRegistered(o.class.name, scopeObject, len(names))
	return nil
}

// removeIntercept releases names from the object's own scope only. An
// object that never opted in releases nothing; class-level interception
// is never touched through an object receiver.
func (o *Object) removeIntercept(names []string) []string {
	if o.scope == nil || o.scope.reg.empty() {
		return nil
	}

	targets := names
	if len(targets) == 0 {
		targets = o.scope.reg.names()
	}

	var released []string
	for _, name := range targets {
		if !o.scope.reg.delete(name) {
			continue
		}
		released = append(released, name)
		if o.scope.surf != nil && o.scope.surf.remove(name) {
			emitForwarderRemoved(o.class.name, scopeObject, name)
		}
	}
	if len(released) > 0 {
		emitInterceptReleased(o.class.name, scopeObject, len(released))
	}
	return released
}

// queryIntercept answers through both layers: a name counts as
// intercepted when either the object's own scope or its class reports it.
// Class-level interception is therefore visible through untouched
// objects.
func (o *Object) queryIntercept(names []string) bool {
	if len(names) == 0 {
		if o.scope != nil && !o.scope.reg.empty() {
			return true
		}
		return o.class.Intercepted()
	}
	for _, name := range names {
		if o.scopeHas(name) {
			continue
		}
		if !o.class.Intercepted(name) {
			return false
		}
	}
	return true
}

func (o *Object) scopeHas(name string) bool {
	if o.scope == nil {
		return false
	}
	_, ok := o.scope.reg.get(name)
	return ok
}
