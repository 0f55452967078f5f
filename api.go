// Package waylay provides method interception for a dynamic class model.
//
// The package carries a small class hierarchy (classes, superclass chains,
// method dictionaries, instances with slots) and lets a class designate
// instance methods to be wrapped by caller-supplied handlers. Interception
// participates in inheritance, can be declared before the target method
// exists, and can be applied to a single object without affecting its
// class.
//
// # Basic Usage
//
//	greeter := waylay.NewClass("Greeter")
//	greeter.Define("welcome", func(self *waylay.Object, args ...any) (any, error) {
//	    return "welcome " + args[0].(string), nil
//	})
//
//	greeter.Intercept(func(call *waylay.Call) (any, error) {
//	    out, err := call.Proceed()
//	    if err != nil {
//	        return nil, err
//	    }
//	    return strings.ToUpper(out.(string)), nil
//	}, "welcome")
//
//	out, _ := greeter.New().Send("welcome", "jack") // "WELCOME JACK"
//	greeter.Release("welcome")
//	out, _ = greeter.New().Send("welcome", "jack")  // "welcome jack"
//
// # Resolution Order
//
// A call resolves through the object's own override surface, then each
// class-chain surface from most specific to least, then the most specific
// method body. A handler's Proceed moves to the next layer, so stacked
// interception nests rather than replaces.
//
// # Lifecycle
//
// Define and Undefine are the method added/removed notifications the
// mechanism consumes. Registering interception for a method that does not
// exist yet is legal; the forwarder activates the moment the method is
// defined and deactivates when it is removed, without dropping the
// registration.
//
// # Inheritance
//
// A subclass reads its parent's registry by reference until it first
// intercepts or releases on its own, at which point the registry forks
// copy-on-write. Parent-level interception keeps wrapping subclass method
// bodies until the parent releases it.
//
// # Per-Object Interception
//
// Apply, Remove and Query accept either a *Class or an *Object. Applied
// to an object they operate on a scope visible to that object alone,
// layered ahead of the class in resolution order.
//
// # Observability
//
// Every lifecycle and interception event is emitted as a capitan signal;
// see signals.go for the signal and key catalogue.
//
// # Concurrency
//
// Class metadata follows a single-threaded mutation model: define and
// intercept at setup time, dispatch afterwards. The package performs no
// locking.
package waylay

// Receiver is anything interception can be applied to: a *Class (class-wide
// effect) or an *Object (effect scoped to that one instance).
type Receiver interface {
	applyIntercept(h Handler, names []string) error
	removeIntercept(names []string) []string
	queryIntercept(names []string) bool
}

// Apply registers handler for the named methods on recv. On a class it is
// equivalent to Intercept. On an object it opts the object's own scope
// into the mechanism, creating it if needed, leaving the class and sibling
// instances untouched.
//
// Like Intercept, Apply fails with ErrNilHandler or ErrNoNames before any
// mutation.
func Apply(recv Receiver, handler Handler, names ...string) error {
	return recv.applyIntercept(handler, names)
}

// Remove releases the named methods — all currently intercepted names when
// called with none — from whichever scope on recv actually holds the
// mechanism, and returns the names actually released. A receiver that was
// never opted in releases nothing; that is a legal state, not an error.
func Remove(recv Receiver, names ...string) []string {
	return recv.removeIntercept(names)
}

// Query reports interception state for recv. For a class it defers to
// Intercepted. For an object it answers true when either the object's own
// scope or its class reports the named methods (or any method, with no
// names) as intercepted.
func Query(recv Receiver, names ...string) bool {
	return recv.queryIntercept(names)
}
