package waylay

// Handler is the caller-supplied interception logic run in place of an
// intercepted method body. A handler that wants the original behavior
// calls Proceed on the call it receives; one that does not simply returns
// its own result. Return values pass through dispatch untransformed.
type Handler func(call *Call) (any, error)

// chainEntry is one step of a resolved call: either a surface forwarder
// or the terminal method body.
type chainEntry struct {
	handler Handler
	body    Method
}

// Call carries one dispatched invocation through its resolution chain.
type Call struct {
	// Receiver is the object the method was invoked on.
	Receiver *Object

	// Selector is the invoked method name.
	Selector string

	// Args are the call-site arguments, passed through unvalidated; the
	// handler and body index them under the host call convention.
	Args []any

	chain []chainEntry
	next  int
}

// Proceed invokes the next applicable definition: the definition dispatch
// would have reached had the current forwarder not existed. That is the
// next surface's handler when one is layered below, otherwise the method
// body. Proceeding past the end of the chain fails with ErrMethodMissing.
//
// Calling Proceed twice re-runs the same next definition, matching
// super-send semantics; not calling it skips the original body entirely.
func (c *Call) Proceed() (any, error) {
	if c.next >= len(c.chain) {
		return nil, newDispatchError(c.Receiver.class.name, c.Selector)
	}
	entry := c.chain[c.next]
	if entry.handler != nil {
		inner := &Call{
			Receiver: c.Receiver,
			Selector: c.Selector,
			Args:     c.Args,
			chain:    c.chain,
			next:     c.next + 1,
		}
		return entry.handler(inner)
	}
	return entry.body(c.Receiver, c.Args...)
}

// Send dispatches name on the object. Resolution consults, in order, the
// object's own override surface, each class-chain surface from most
// specific to least, and finally the most specific method body.
//
// When no body resolves anywhere in the chain, Send fails with a
// *DispatchError wrapping ErrMethodMissing and no handler runs: a
// registered name whose method was removed stops intercepting until the
// method is defined again.
func (o *Object) Send(name string, args ...any) (any, error) {
	chain := o.resolve(name)
	if chain == nil {
		return nil, newDispatchError(o.class.name, name)
	}
	call := &Call{Receiver: o, Selector: name, Args: args, chain: chain}
	return call.Proceed()
}

// resolve builds the chain of applicable definitions for name, or nil
// when no method body exists.
func (o *Object) resolve(name string) []chainEntry {
	body, ok := o.class.lookupMethod(name)
	if !ok {
		return nil
	}

	var chain []chainEntry
	if o.scope != nil && o.scope.surf != nil {
		if h, found := o.scope.surf.lookup(name); found {
			chain = append(chain, chainEntry{handler: h})
		}
	}
	for k := o.class; k != nil; k = k.super {
		if k.surf == nil {
			continue
		}
		if h, found := k.surf.lookup(name); found {
			chain = append(chain, chainEntry{handler: h})
		}
	}
	return append(chain, chainEntry{body: body})
}
