package lang

import (
	"fmt"
	"reflect"
)

// Func is a callable that receives its receiver explicitly.
type Func func(this any, args ...any) any

// Global is the receiver used by the package-level binding functions when they
// are given a nil context.
var Global Record = Object{}

// Binder binds callables to receivers. The zero value binds nil contexts to the
// package-level Global.
type Binder struct {
	// Global is the receiver used for a nil context. When nil, the package-level
	// Global is read at call time.
	Global any
}

var defaultBinder Binder

// Bind returns a Func that calls fn with context as receiver and args followed by
// the call arguments. The receiver supplied at call time is ignored.
func Bind(context any, fn Func, args ...any) Func {
	return defaultBinder.Bind(context, fn, args...)
}

// BindMethod is Bind for the method stored under name on context. The method is
// looked up on every call, so replacing it after binding changes what runs.
func BindMethod(context any, name string, args ...any) Func {
	return defaultBinder.BindMethod(context, name, args...)
}

// Partial returns a Func that calls fn with the caller's receiver and args followed
// by the call arguments.
func Partial(fn Func, args ...any) Func {
	bound := clone(args)

	return func(this any, callArgs ...any) any {
		return fn(this, concat(bound, callArgs)...)
	}
}

// Invoke calls the method stored under name on obj, with obj as receiver.
func Invoke(obj any, name string, args ...any) (any, error) {
	fn, err := method(obj, name)
	if err != nil {
		return nil, err
	}

	return fn(obj, args...), nil
}

// Bind is the package-level Bind using b's global receiver.
func (b Binder) Bind(context any, fn Func, args ...any) Func {
	bound := clone(args)

	return func(_ any, callArgs ...any) any {
		return fn(b.receiver(context), concat(bound, callArgs)...)
	}
}

// BindMethod is the package-level BindMethod using b's global receiver.
// The returned Func panics with an error wrapping ErrNotCallable when name does
// not resolve to a function at call time.
func (b Binder) BindMethod(context any, name string, args ...any) Func {
	bound := clone(args)

	return func(_ any, callArgs ...any) any {
		this := b.receiver(context)

		fn, err := method(this, name)
		if err != nil {
			panic(err)
		}

		return fn(this, concat(bound, callArgs)...)
	}
}

func (b Binder) receiver(context any) any {
	if !isNil(context) {
		return context
	}

	if b.Global != nil {
		return b.Global
	}

	return Global
}

func method(obj any, name string) (Func, error) {
	rec, ok := AsRecord(obj)
	if !ok {
		return nil, fmt.Errorf("method %q on %T: %w", name, obj, ErrNotMapping)
	}

	v, ok := rec.Get(name)
	if !ok {
		return nil, &PathError{Path: name, Segment: name, Keys: AllKeys(rec), Err: ErrMissingKey}
	}

	switch fn := v.(type) {
	case Func:
		if fn != nil {
			return fn, nil
		}
	case func(any, ...any) any:
		if fn != nil {
			return fn, nil
		}
	}

	return nil, fmt.Errorf("method %q holds %T: %w", name, v, ErrNotCallable)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func clone(args []any) []any {
	if len(args) == 0 {
		return nil
	}

	out := make([]any, len(args))
	copy(out, args)

	return out
}

func concat(bound, call []any) []any {
	out := make([]any, 0, len(bound)+len(call))
	out = append(out, bound...)

	return append(out, call...)
}
