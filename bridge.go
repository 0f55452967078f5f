package waylay

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the bridge tag with sentinel
	sentinel.Tag("waylay")
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Wrap builds a class for the Go struct type T. Exported fields (scanned
// through sentinel) become slot accessor methods — a getter named after
// the field in lower-camel form and a matching setX setter — and exported
// methods of *T become instance methods invoking the underlying value
// through reflection.
//
// Field behavior is declared via the waylay struct tag:
//
//	Balance float64 `waylay:"bal"` // accessors "bal" / "setBal"
//	secret  string                 // unexported, never scanned
//	Token   string  `waylay:"-"`   // skipped
//
// Bridged methods and accessors go through Define like any other method,
// so interception and lifecycle sync apply to them unchanged. A method
// whose lower-camel selector collides with a field accessor replaces it.
//
// Instances must be created with NewFrom so they carry a native value for
// the bridged methods to operate on.
func Wrap[T any](name string) *Class {
	rt := reflect.TypeFor[T]()
	c := NewClass(name)

	if rt.Kind() == reflect.Struct {
		meta := sentinel.Scan[T]()
		for _, field := range meta.Fields {
			tag := field.Tags["waylay"]
			if tag == "-" {
				continue
			}
			sel := lowerFirst(field.Name)
			if tag != "" {
				sel = tag
			}
			defineAccessors(c, rt, sel, field.Index)
		}
	}

	pt := reflect.PointerTo(rt)
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		c.Define(lowerFirst(m.Name), bridgeMethod(rt, m))
	}

	return c
}

// NewFrom creates an instance carrying v as its native value. A
// non-pointer value is copied to fresh storage so setters and pointer
// methods can mutate it; pass a pointer to share the caller's value.
func (c *Class) NewFrom(v any) *Object {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		v = p.Interface()
	}
	o := c.New()
	o.native = v
	return o
}

// Native returns the Go value behind an instance created with NewFrom,
// or nil for plain instances.
func (o *Object) Native() any { return o.native }

// defineAccessors installs the getter and setter pair for one field.
func defineAccessors(c *Class, rt reflect.Type, sel string, index []int) {
	idx := append([]int(nil), index...)

	c.Define(sel, func(self *Object, _ ...any) (any, error) {
		elem, err := nativeElem(self, rt)
		if err != nil {
			return nil, err
		}
		return elem.FieldByIndex(idx).Interface(), nil
	})

	setSel := "set" + upperFirst(sel)
	c.Define(setSel, func(self *Object, args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("wrong number of arguments for %s: have %d, want 1", setSel, len(args))
		}
		elem, err := nativeElem(self, rt)
		if err != nil {
			return nil, err
		}
		field := elem.FieldByIndex(idx)
		av, err := argValue(args[0], field.Type())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", setSel, err)
		}
		field.Set(av)
		return nil, nil
	})
}

// bridgeMethod wraps one reflected Go method as a Method.
func bridgeMethod(rt reflect.Type, m reflect.Method) Method {
	mt := m.Type
	return func(self *Object, args ...any) (any, error) {
		recv, err := nativePointer(self, rt)
		if err != nil {
			return nil, err
		}

		fixed := mt.NumIn() - 1
		if mt.IsVariadic() {
			if len(args) < fixed-1 {
				return nil, fmt.Errorf("wrong number of arguments for %s: have %d, want at least %d", m.Name, len(args), fixed-1)
			}
		} else if len(args) != fixed {
			return nil, fmt.Errorf("wrong number of arguments for %s: have %d, want %d", m.Name, len(args), fixed)
		}

		in := make([]reflect.Value, 0, len(args)+1)
		in = append(in, recv)
		for i, a := range args {
			want := mt.In(i + 1)
			if mt.IsVariadic() && i+1 >= mt.NumIn()-1 {
				want = mt.In(mt.NumIn() - 1).Elem()
			}
			av, err := argValue(a, want)
			if err != nil {
				return nil, fmt.Errorf("%s argument %d: %w", m.Name, i, err)
			}
			in = append(in, av)
		}

		results := m.Func.Call(in)

		// Trailing error return maps onto the Method error.
		if n := len(results); n > 0 && results[n-1].Type() == errorType {
			if !results[n-1].IsNil() {
				return nil, results[n-1].Interface().(error)
			}
			results = results[:n-1]
		}
		if len(results) == 0 {
			return nil, nil
		}
		return results[0].Interface(), nil
	}
}

// nativeElem returns the addressable struct value behind the instance.
func nativeElem(self *Object, rt reflect.Type) (reflect.Value, error) {
	p, err := nativePointer(self, rt)
	if err != nil {
		return reflect.Value{}, err
	}
	return p.Elem(), nil
}

// nativePointer returns the *T behind the instance.
func nativePointer(self *Object, rt reflect.Type) (reflect.Value, error) {
	if self.native == nil {
		return reflect.Value{}, fmt.Errorf("%s instance has no native value; create it with NewFrom", self.class.name)
	}
	rv := reflect.ValueOf(self.native)
	if rv.Kind() != reflect.Pointer || rv.Type().Elem() != rt {
		return reflect.Value{}, fmt.Errorf("%s instance holds %T, want *%s", self.class.name, self.native, rt)
	}
	return rv, nil
}

// argValue adapts a call-site argument to the wanted parameter type.
// Assignable values pass through; numeric values convert between numeric
// kinds; everything else is a type error.
func argValue(a any, want reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("nil argument for %s parameter", want)
	}
	av := reflect.ValueOf(a)
	if av.Type().AssignableTo(want) {
		return av, nil
	}
	if isNumeric(av.Kind()) && isNumeric(want.Kind()) {
		return av.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("argument %T not assignable to %s", a, want)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
