package waylay

// surface is the synthetic dispatch layer holding the currently active
// forwarders for one class or object scope. Its contents are always a
// subset of "registered and currently defined": lifecycle sync installs
// and removes entries as methods appear and disappear.
//
// A surface is created on the first successful installation and is never
// destroyed once created, even if emptied, so repeated intercept/release
// cycles keep a stable resolution order.
type surface struct {
	forwarders map[string]Handler
}

func newSurface() *surface {
	return &surface{forwarders: make(map[string]Handler)}
}

// install activates a forwarder for name, replacing any existing one.
func (s *surface) install(name string, h Handler) {
	s.forwarders[name] = h
}

// remove deactivates the forwarder for name, reporting whether one was
// installed.
func (s *surface) remove(name string) bool {
	if _, ok := s.forwarders[name]; !ok {
		return false
	}
	delete(s.forwarders, name)
	return true
}

// lookup returns the active forwarder for name, if any.
func (s *surface) lookup(name string) (Handler, bool) {
	h, ok := s.forwarders[name]
	return h, ok
}

func (s *surface) size() int { return len(s.forwarders) }
