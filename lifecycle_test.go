package waylay_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/waylay"
)

func TestLifecycle_RetroactiveInterception(t *testing.T) {
	c := waylay.NewClass("Greeter")
	c.Intercept(upcase, "welcome")

	// Declared before the method exists; activates the moment it appears.
	defineWelcome(c, "welcome")

	out, err := c.New().Send("welcome", "jack")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if out != "WELCOME JACK" {
		t.Errorf("Send() = %q, want retroactive interception", out)
	}
}

func TestLifecycle_UndefineStopsInterception(t *testing.T) {
	c := waylay.NewClass("Greeter")
	defineWelcome(c, "welcome")

	handlerRan := false
	c.Intercept(func(call *waylay.Call) (any, error) {
		handlerRan = true
		return call.Proceed()
	}, "welcome")

	c.Undefine("welcome")

	if _, err := c.New().Send("welcome", "jack"); !errors.Is(err, waylay.ErrMethodMissing) {
		t.Fatalf("Send() error = %v, want ErrMethodMissing", err)
	}
	if handlerRan {
		t.Error("handler ran for a removed method")
	}

	// The intent to intercept survives removal.
	if !c.Intercepted("welcome") {
		t.Error("Intercepted() = false after Undefine")
	}
}

func TestLifecycle_RedefineRestoresInterception(t *testing.T) {
	c := waylay.NewClass("Greeter")
	defineWelcome(c, "welcome")
	c.Intercept(upcase, "welcome")

	c.Undefine("welcome")
	defineWelcome(c, "hello")

	// No fresh Intercept call needed.
	out, err := c.New().Send("welcome", "jack")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if out != "HELLO JACK" {
		t.Errorf("Send() = %q, want %q", out, "HELLO JACK")
	}
}

func TestLifecycle_RedefineKeepsInterception(t *testing.T) {
	c := waylay.NewClass("Greeter")
	defineWelcome(c, "welcome")
	c.Intercept(upcase, "welcome")

	// Redefining in place re-fires the defined notification.
	defineWelcome(c, "howdy")

	out, _ := c.New().Send("welcome", "jack")
	if out != "HOWDY JACK" {
		t.Errorf("Send() = %q, want %q", out, "HOWDY JACK")
	}
}

func TestLifecycle_RepeatedCycles(t *testing.T) {
	c := waylay.NewClass("Greeter")
	c.Intercept(upcase, "welcome")

	for i := 0; i < 3; i++ {
		defineWelcome(c, "welcome")
		out, err := c.New().Send("welcome", "jack")
		if err != nil {
			t.Fatalf("cycle %d: Send() error: %v", i, err)
		}
		if out != "WELCOME JACK" {
			t.Errorf("cycle %d: Send() = %q, want interception restored", i, out)
		}
		c.Undefine("welcome")
		if _, err := c.New().Send("welcome", "jack"); !errors.Is(err, waylay.ErrMethodMissing) {
			t.Errorf("cycle %d: Send() error = %v, want ErrMethodMissing", i, err)
		}
	}
}
