package lang

import (
	"langkit/internal/dotpath"
)

// GetProperty returns the value at the dotted path, or nil when any segment is
// missing or an intermediate value is not a mapping.
func GetProperty(obj any, path string) any {
	v, _ := Lookup(obj, path)
	return v
}

// Lookup is GetProperty with an explicit found flag, so a stored nil can be told
// apart from a missing key.
func Lookup(obj any, path string) (any, bool) {
	v, err := Resolve(obj, path)
	return v, err == nil
}

// Resolve walks the dotted path and returns the value found there. On failure it
// returns a *PathError wrapping ErrMissingKey or ErrNotMapping.
func Resolve(obj any, path string) (any, error) {
	current := obj

	for i, segment := range dotpath.Split(path) {
		rec, ok := AsRecord(current)
		if !ok {
			return nil, &PathError{Path: path, Segment: segment, Index: i, Err: ErrNotMapping}
		}

		v, ok := rec.Get(segment)
		if !ok {
			return nil, &PathError{Path: path, Segment: segment, Index: i, Keys: AllKeys(rec), Err: ErrMissingKey}
		}

		current = v
	}

	return current, nil
}

// SetProperty stores value at the dotted path. Missing intermediate segments are
// created as empty Objects and intermediates holding non-mapping values are
// replaced by empty Objects. Nothing happens when obj is not a mapping, or when a
// map along the path has an element type that cannot hold the value to store.
func SetProperty(obj any, path string, value any) {
	rec, ok := AsRecord(obj)
	if !ok || isNilMap(rec) {
		return
	}

	segments := dotpath.Split(path)

	for _, segment := range segments.Parent() {
		next, _ := rec.Get(segment)

		child, ok := AsRecord(next)
		if !ok || isNilMap(child) {
			created := Object{}
			if !storable(rec, created) {
				return
			}

			rec.Set(segment, created)
			child = created
		}

		rec = child
	}

	if storable(rec, value) {
		rec.Set(segments.Last(), value)
	}
}

func isNilMap(r Record) bool {
	switch x := r.(type) {
	case Object:
		return x == nil
	case reflectRecord:
		return x.rv.IsNil()
	}

	return false
}
