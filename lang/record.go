package lang

import (
	"fmt"
	"reflect"
	"slices"

	"langkit/internal/common"
)

// Object is a plain string-keyed mapping.
type Object map[string]any

// Record is implemented by every mapping-like value.
//
// Get reads a key, consulting any fallback the record delegates to.
// Set writes an own key. Has and Keys only report own keys.
type Record interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Has(key string) bool
	Keys() []string
}

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	v, ok := o[key]
	return v, ok
}

// Set stores value under key.
func (o Object) Set(key string, value any) {
	o[key] = value
}

// Has reports whether key is present.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Keys returns the keys in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// AsRecord adapts a mapping value to a Record. A map[string]any shares its
// storage with the returned Object; other maps keyed by strings are wrapped
// with reflection. The second result is false for non-mapping values.
func AsRecord(v any) (Record, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case *Delegate:
		if x == nil {
			return nil, false
		}

		return x, true
	case Record:
		return x, true
	case map[string]any:
		return Object(x), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	return reflectRecord{rv: rv}, true
}

// prototyped is implemented by records that fall back to another record.
type prototyped interface {
	Prototype() Record
}

// AllKeys returns the own keys of r together with every key inherited through
// its prototype chain, deduplicated and sorted.
func AllKeys(r Record) []string {
	seen := map[string]struct{}{}

	var keys []string

	for r != nil {
		keys = common.AppendUnique(keys, seen, r.Keys()...)

		p, ok := r.(prototyped)
		if !ok {
			break
		}

		r = p.Prototype()
	}

	slices.Sort(keys)

	return keys
}

// Flatten deep-copies r into a plain Object. Inherited keys are materialized,
// nested records are flattened and slices of values are copied element-wise.
// A record that recurs inside itself is replaced by nil where it recurs.
func Flatten(r Record) Object {
	if r == nil {
		return nil
	}

	seen := ancestors{}
	seen.enter(r)

	return flatten(r, seen)
}

func flatten(r Record, seen ancestors) Object {
	out := make(Object)

	for _, k := range AllKeys(r) {
		v, _ := r.Get(k)
		out[k] = flattenValue(v, seen)
	}

	return out
}

func flattenValue(v any, seen ancestors) any {
	switch KindOf(v) {
	case KindMapping:
		rec, _ := AsRecord(v)
		if !seen.enter(rec) {
			return nil
		}

		defer seen.leave(rec)

		return flatten(rec, seen)
	case KindArray:
		items, ok := v.([]any)
		if !ok {
			return v
		}

		out := make([]any, len(items))
		for i, item := range items {
			out[i] = flattenValue(item, seen)
		}

		return out
	default:
		return v
	}
}

// ancestors tracks the records on the current recursion path by identity.
type ancestors map[uintptr]struct{}

// enter marks r as being walked. It reports false when r is already on the path.
func (a ancestors) enter(r Record) bool {
	id, ok := identity(r)
	if !ok {
		return true
	}

	if _, ok := a[id]; ok {
		return false
	}

	a[id] = struct{}{}

	return true
}

func (a ancestors) leave(r Record) {
	if id, ok := identity(r); ok {
		delete(a, id)
	}
}

// identity returns the address backing a record. Nil maps and records that are
// not maps or pointers have none.
func identity(r Record) (uintptr, bool) {
	rv := reflect.ValueOf(r)
	if rr, ok := r.(reflectRecord); ok {
		rv = rr.rv
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Ptr:
		p := rv.Pointer()
		return p, p != 0
	default:
		return 0, false
	}
}

// storable reports whether r can hold value. Only reflection-backed maps with a
// narrower element type can refuse a value.
func storable(r Record, value any) bool {
	rr, ok := r.(reflectRecord)
	if !ok || value == nil {
		return true
	}

	return reflect.TypeOf(value).AssignableTo(rr.rv.Type().Elem())
}

// reflectRecord adapts maps keyed by a string kind other than map[string]any.
type reflectRecord struct {
	rv reflect.Value
}

func (r reflectRecord) key(k string) reflect.Value {
	return reflect.ValueOf(k).Convert(r.rv.Type().Key())
}

func (r reflectRecord) Get(key string) (any, bool) {
	v := r.rv.MapIndex(r.key(key))
	if !v.IsValid() {
		return nil, false
	}

	return v.Interface(), true
}

func (r reflectRecord) Set(key string, value any) {
	elem := r.rv.Type().Elem()

	var val reflect.Value
	if value == nil {
		val = reflect.Zero(elem)
	} else {
		val = reflect.ValueOf(value)
		if !val.Type().AssignableTo(elem) {
			panic(fmt.Sprintf("lang: cannot store %s under %q in %s", val.Type(), key, r.rv.Type()))
		}
	}

	r.rv.SetMapIndex(r.key(key), val)
}

func (r reflectRecord) Has(key string) bool {
	return r.rv.MapIndex(r.key(key)).IsValid()
}

func (r reflectRecord) Keys() []string {
	keys := make([]string, 0, r.rv.Len())
	for _, k := range r.rv.MapKeys() {
		keys = append(keys, k.String())
	}

	slices.Sort(keys)

	return keys
}
