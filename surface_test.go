package waylay

import "testing"

func TestSurface_InstallRemove(t *testing.T) {
	s := newSurface()
	s.install("welcome", func(*Call) (any, error) { return nil, nil })

	if _, ok := s.lookup("welcome"); !ok {
		t.Error("lookup() missing after install")
	}
	if !s.remove("welcome") {
		t.Error("remove() = false for installed forwarder")
	}
	if s.remove("welcome") {
		t.Error("remove() = true for absent forwarder")
	}
	if s.size() != 0 {
		t.Errorf("size() = %d, want 0", s.size())
	}
}

func TestSurface_CreatedLazily(t *testing.T) {
	c := NewClass("Greeter")
	h := func(call *Call) (any, error) { return call.Proceed() }

	// Registration alone does not create a surface; only a successful
	// forwarder installation does.
	if err := c.Intercept(h, "welcome"); err != nil {
		t.Fatalf("Intercept() error: %v", err)
	}
	if c.surf != nil {
		t.Error("surface created with no defined method")
	}

	c.Define("welcome", func(*Object, ...any) (any, error) { return nil, nil })
	if c.surf == nil {
		t.Fatal("surface not created on forwarder installation")
	}
}

func TestSurface_SurvivesEmptying(t *testing.T) {
	c := NewClass("Greeter")
	c.Define("welcome", func(*Object, ...any) (any, error) { return "hi", nil })
	c.Intercept(func(call *Call) (any, error) { return call.Proceed() }, "welcome")

	surf := c.surf
	if surf == nil {
		t.Fatal("surface missing after interception")
	}

	c.Release()
	if c.surf != surf {
		t.Error("surface replaced or destroyed by Release")
	}
	if c.surf.size() != 0 {
		t.Errorf("surface size = %d after Release, want 0", c.surf.size())
	}

	// Re-intercepting reuses the same layer.
	c.Intercept(func(call *Call) (any, error) { return call.Proceed() }, "welcome")
	if c.surf != surf {
		t.Error("surface not reused on re-interception")
	}
}

func TestSurface_TracksRegistryAndDefinitions(t *testing.T) {
	c := NewClass("Greeter")
	c.Define("welcome", func(*Object, ...any) (any, error) { return "hi", nil })
	c.Intercept(func(call *Call) (any, error) { return call.Proceed() }, "welcome", "pending")

	if _, ok := c.surf.lookup("welcome"); !ok {
		t.Error("forwarder missing for registered and defined name")
	}
	if _, ok := c.surf.lookup("pending"); ok {
		t.Error("forwarder present for undefined name")
	}

	c.Undefine("welcome")
	if _, ok := c.surf.lookup("welcome"); ok {
		t.Error("stale forwarder after Undefine")
	}
}
