package waylay_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/waylay"
)

func TestCall_ExposesInvocation(t *testing.T) {
	c := waylay.NewClass("Greeter")
	defineWelcome(c, "welcome")

	o := c.New()
	var got *waylay.Call
	c.Intercept(func(call *waylay.Call) (any, error) {
		got = call
		return call.Proceed()
	}, "welcome")

	if _, err := o.Send("welcome", "jack"); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if got.Receiver != o {
		t.Error("Call.Receiver mismatch")
	}
	if got.Selector != "welcome" {
		t.Errorf("Call.Selector = %q, want %q", got.Selector, "welcome")
	}
	if len(got.Args) != 1 || got.Args[0] != "jack" {
		t.Errorf("Call.Args = %v, want [jack]", got.Args)
	}
}

func TestProceed_ObjectScopeLayersOverClassScope(t *testing.T) {
	c := waylay.NewClass("Greeter")
	defineWelcome(c, "welcome")

	var order []string
	c.Intercept(func(call *waylay.Call) (any, error) {
		order = append(order, "class")
		return call.Proceed()
	}, "welcome")

	o := c.New()
	waylay.Apply(o, func(call *waylay.Call) (any, error) {
		order = append(order, "object")
		return call.Proceed()
	}, "welcome")

	out, err := o.Send("welcome", "jack")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if out != "welcome jack" {
		t.Errorf("Send() = %q, want body result through both layers", out)
	}
	if len(order) != 2 || order[0] != "object" || order[1] != "class" {
		t.Errorf("layer order = %v, want [object class]", order)
	}
}

func TestProceed_TwiceRunsNextDefinitionTwice(t *testing.T) {
	c := waylay.NewClass("Counter")
	runs := 0
	c.Define("tick", func(_ *waylay.Object, _ ...any) (any, error) {
		runs++
		return runs, nil
	})
	c.Intercept(func(call *waylay.Call) (any, error) {
		if _, err := call.Proceed(); err != nil {
			return nil, err
		}
		return call.Proceed()
	}, "tick")

	out, err := c.New().Send("tick")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if runs != 2 || out != 2 {
		t.Errorf("runs = %d, out = %v; want body run twice", runs, out)
	}
}

func TestDispatch_BodyErrorPassesThrough(t *testing.T) {
	c := waylay.NewClass("Greeter")
	boom := errors.New("boom")
	c.Define("explode", func(_ *waylay.Object, _ ...any) (any, error) {
		return nil, boom
	})
	c.Intercept(func(call *waylay.Call) (any, error) {
		return call.Proceed()
	}, "explode")

	if _, err := c.New().Send("explode"); !errors.Is(err, boom) {
		t.Errorf("Send() error = %v, want the body's error unmodified", err)
	}
}

func TestDispatch_ArgsPassThroughUnvalidated(t *testing.T) {
	c := waylay.NewClass("Adder")
	c.Define("sum", func(_ *waylay.Object, args ...any) (any, error) {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total, nil
	})

	out, err := c.New().Send("sum", 1, 2, 3)
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if out != 6 {
		t.Errorf("Send() = %v, want 6", out)
	}
}
