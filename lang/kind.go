package lang

import "reflect"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a value for the purpose of deciding whether helpers recurse into it.
type Kind int

const (
	_ Kind = iota // zero value is not a valid Kind

	KindNil
	KindPrimitive
	KindArray
	KindMapping
	KindFunction

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindOf classifies v. Records and maps keyed by strings are mappings; slices and
// arrays are arrays; func values are functions; everything else is a primitive.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNil
	case *Delegate:
		if x == nil {
			return KindNil
		}

		return KindMapping
	case Object, map[string]any:
		return KindMapping
	case Func, func(any, ...any) any:
		return KindFunction
	case Record:
		return KindMapping
	}

	return kindOfType(reflect.TypeOf(v))
}

func kindOfType(rtype reflect.Type) Kind {
	switch rtype.Kind() {
	default:
		return KindPrimitive
	case reflect.Map:
		if rtype.Key().Kind() == reflect.String {
			return KindMapping
		}

		return KindPrimitive
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Func:
		return KindFunction
	}
}

// IsMapping reports whether v is a value helpers may recurse into.
func IsMapping(v any) bool {
	return KindOf(v) == KindMapping
}
