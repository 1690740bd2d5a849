package lang

import (
	"langkit/internal/common"
)

// Delegate is a record with its own keys layered over a prototype record.
// Reads check the own layer first and then fall back to the prototype chain.
// Writes always go to the own layer, shadowing the prototype.
type Delegate struct {
	proto Record
	own   Object
}

var _ Record = (*Delegate)(nil)

// NewDelegate returns a record that falls back to source for keys it does not
// define. When properties is given, its own keys are copied onto the new record.
func NewDelegate(source Record, properties ...Record) *Delegate {
	d := &Delegate{proto: normalizeRecord(source), own: Object{}}

	if props, ok := optionalRecord(properties); ok {
		Mixin(d.own, props)
	}

	return d
}

// DeepDelegate is NewDelegate that also delegates nested mappings: when a property
// holds a mapping and the value reachable through source at that key is a mapping
// too, the own value becomes DeepDelegate(sourceValue, propertyValue). Mapping
// properties without a counterpart in source become delegates with no prototype.
func DeepDelegate(source Record, properties ...Record) *Delegate {
	d := NewDelegate(source)

	props, ok := optionalRecord(properties)
	if !ok {
		return d
	}

	for _, k := range props.Keys() {
		v, _ := props.Get(k)

		nested, ok := AsRecord(v)
		if !ok {
			d.own[k] = v
			continue
		}

		// base may be nil; the nested layer still never shares storage with props.
		inherited, _ := d.Get(k)
		base, _ := AsRecord(inherited)
		d.own[k] = DeepDelegate(base, nested)
	}

	return d
}

// Get returns the own value for key, or the value inherited from the prototype chain.
func (d *Delegate) Get(key string) (any, bool) {
	if v, ok := d.own[key]; ok {
		return v, true
	}

	if d.proto == nil {
		return nil, false
	}

	return d.proto.Get(key)
}

// Set stores an own value, shadowing any inherited one.
func (d *Delegate) Set(key string, value any) {
	if d.own == nil {
		d.own = Object{}
	}

	d.own[key] = value
}

// Has reports whether key is an own key.
func (d *Delegate) Has(key string) bool {
	_, ok := d.own[key]
	return ok
}

// Keys returns the own keys in sorted order.
func (d *Delegate) Keys() []string {
	return d.own.Keys()
}

// Delete removes an own key, exposing the inherited value again if there is one.
func (d *Delegate) Delete(key string) {
	delete(d.own, key)
}

// Prototype returns the record reads fall back to, or nil.
func (d *Delegate) Prototype() Record {
	return d.proto
}

// Own returns a shallow copy of the own layer.
func (d *Delegate) Own() Object {
	return Mixin(nil, d.own)
}

// String renders the flattened record.
func (d *Delegate) String() string {
	return Dump(Flatten(d))
}

func optionalRecord(records []Record) (Record, bool) {
	r, ok := common.First(records)
	if !ok {
		return nil, false
	}

	r = normalizeRecord(r)

	return r, r != nil
}

// normalizeRecord turns typed nil records into a nil interface.
func normalizeRecord(r Record) Record {
	if d, ok := r.(*Delegate); ok && d == nil {
		return nil
	}

	return r
}
