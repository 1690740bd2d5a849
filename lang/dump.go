package lang

import (
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump renders v for debugging with sorted map keys and no pointer addresses,
// so equal values always dump identically. Delegates are flattened first.
func Dump(v any) string {
	if d, ok := v.(*Delegate); ok && d != nil {
		v = Flatten(d)
	}

	return dumpConfig.Sdump(v)
}
