package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelegate(t *testing.T) {
	src := newMixinProperties()

	dest := NewDelegate(src, Object{"newProperty": "bar"})

	assert.Equal(t, src["property"], GetProperty(dest, "property"))
	v, _ := dest.Get("subObject")
	assert.True(t, sameMap(src["subObject"], v))
	m, _ := dest.Get("method")
	sameFunc(t, src["method"], m)
	assert.Equal(t, "bar", GetProperty(dest, "newProperty"))

	assert.False(t, dest.Has("property"))
	assert.True(t, dest.Has("newProperty"))
	assert.Equal(t, []string{"newProperty"}, dest.Keys())
}

func TestNewDelegate_Shadowing(t *testing.T) {
	src := Object{"p": "old", "q": "kept"}

	d := NewDelegate(src, Object{"p": "new"})

	assert.Equal(t, "new", GetProperty(d, "p"))
	assert.Equal(t, "kept", GetProperty(d, "q"))
	assert.Equal(t, "old", src["p"])

	d.Delete("p")
	assert.Equal(t, "old", GetProperty(d, "p"))
}

func TestNewDelegate_SeesLaterSourceChanges(t *testing.T) {
	src := Object{"a": 1}
	d := NewDelegate(src)

	src["a"] = 2
	src["b"] = 3

	assert.Equal(t, 2, GetProperty(d, "a"))
	assert.Equal(t, 3, GetProperty(d, "b"))
	assert.Empty(t, d.Keys())
}

func TestNewDelegate_NilSourceAndProperties(t *testing.T) {
	d := NewDelegate(nil, nil)

	_, ok := d.Get("anything")
	assert.False(t, ok)
	assert.Nil(t, d.Prototype())

	var nilDelegate *Delegate
	d = NewDelegate(nilDelegate)
	assert.Nil(t, d.Prototype())

	d.Set("x", 1)
	assert.Equal(t, []string{"x"}, d.Keys())
}

func TestNewDelegate_Chain(t *testing.T) {
	root := Object{"a": 1, "b": 1, "c": 1}
	middle := NewDelegate(root, Object{"b": 2})
	leaf := NewDelegate(middle, Object{"c": 3})

	assert.Equal(t, 1, GetProperty(leaf, "a"))
	assert.Equal(t, 2, GetProperty(leaf, "b"))
	assert.Equal(t, 3, GetProperty(leaf, "c"))
	assert.Equal(t, []string{"c"}, leaf.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, AllKeys(leaf))
	assert.Same(t, middle, leaf.Prototype())
}

func TestNewDelegate_MethodsSeeDelegateReceiver(t *testing.T) {
	src := Object{
		"name": "source",
		"describe": Func(func(this any, _ ...any) any {
			return GetProperty(this, "name")
		}),
	}

	d := NewDelegate(src, Object{"name": "delegate"})

	got, err := Invoke(d, "describe")
	require.NoError(t, err)
	assert.Equal(t, "delegate", got)

	got, err = Invoke(src, "describe")
	require.NoError(t, err)
	assert.Equal(t, "source", got)
}

func TestDelegate_OwnIsACopy(t *testing.T) {
	d := NewDelegate(Object{"a": 1}, Object{"b": 2})

	own := d.Own()
	own["c"] = 3

	assert.False(t, d.Has("c"))
	assert.Equal(t, []string{"b"}, d.Keys())
}

func TestDeepDelegate(t *testing.T) {
	properties := newMixinProperties()

	dest := DeepDelegate(properties, Object{
		"newProperty": "foo",
		"subObject": Object{
			"otherProperty": "la",
		},
	})

	assert.Equal(t, properties["property"], GetProperty(dest, "property"))
	assert.Equal(t, "foo", GetProperty(dest, "newProperty"))
	m, _ := dest.Get("method")
	sameFunc(t, properties["method"], m)

	sub, ok := GetProperty(dest, "subObject").(*Delegate)
	require.True(t, ok)
	assert.False(t, sameMap(properties["subObject"], sub))
	assert.Equal(t, GetProperty(properties, "subObject.property"), GetProperty(dest, "subObject.property"))
	assert.Equal(t, "la", GetProperty(dest, "subObject.otherProperty"))

	assert.True(t, dest.Has("newProperty"))
	assert.False(t, dest.Has("property"))
	assert.True(t, sub.Has("otherProperty"))
	assert.False(t, sub.Has("property"))
}

func TestDeepDelegate_Recursive(t *testing.T) {
	src := Object{
		"db": Object{
			"pool": Object{"min": 1, "max": 10},
			"host": "localhost",
		},
	}

	d := DeepDelegate(src, Object{
		"db": Object{
			"pool": Object{"max": 50},
		},
	})

	assert.Equal(t, 1, GetProperty(d, "db.pool.min"))
	assert.Equal(t, 50, GetProperty(d, "db.pool.max"))
	assert.Equal(t, "localhost", GetProperty(d, "db.host"))
	assert.Equal(t, 10, GetProperty(src, "db.pool.max"))

	pool, ok := GetProperty(d, "db.pool").(*Delegate)
	require.True(t, ok)
	assert.Equal(t, []string{"max"}, pool.Keys())
}

func TestDeepDelegate_NonMappingShadows(t *testing.T) {
	src := Object{"sub": Object{"x": 1}, "list": []any{1}, "scalar": "a"}

	d := DeepDelegate(src, Object{
		"sub":    "flat",
		"list":   Object{"k": "v"},
		"scalar": Object{"k": "v"},
		"fresh":  Object{"k": "v"},
	})

	assert.Equal(t, "flat", GetProperty(d, "sub"))

	for _, key := range []string{"list", "scalar", "fresh"} {
		nested, ok := GetProperty(d, key).(*Delegate)
		require.True(t, ok, key)
		assert.Nil(t, nested.Prototype(), key)
		assert.Equal(t, Object{"k": "v"}, Flatten(nested), key)
	}
}

func TestDeepDelegate_LeavesPropertiesUnchanged(t *testing.T) {
	props := Object{
		"sub":  Object{"extra": "y", "deeper": Object{"z": 1}},
		"both": Object{"own": true},
	}
	d := DeepDelegate(Object{"other": 1, "both": Object{"inherited": true}}, props)

	SetProperty(d, "sub.leak", true)
	SetProperty(d, "sub.deeper.leak", true)
	SetProperty(d, "both.leak", true)

	assert.Equal(t, true, GetProperty(d, "sub.leak"))
	assert.Equal(t, true, GetProperty(d, "sub.deeper.leak"))
	assert.Equal(t, "y", GetProperty(d, "sub.extra"))
	assert.Nil(t, GetProperty(props, "sub.leak"))
	assert.Nil(t, GetProperty(props, "sub.deeper.leak"))
	assert.Nil(t, GetProperty(props, "both.leak"))
	assert.Equal(t, Object{
		"sub":  Object{"extra": "y", "deeper": Object{"z": 1}},
		"both": Object{"own": true},
	}, props)
}

func TestDelegate_StringSelfReference(t *testing.T) {
	o := Object{"a": 1}
	o["self"] = o

	d := NewDelegate(o)

	assert.NotPanics(t, func() {
		assert.Contains(t, d.String(), `"a": (int) 1`)
	})
}

func TestDeepDelegate_NoProperties(t *testing.T) {
	src := Object{"a": 1}

	d := DeepDelegate(src)

	assert.Equal(t, 1, GetProperty(d, "a"))
	assert.Empty(t, d.Keys())
}

func TestFlatten(t *testing.T) {
	src := Object{"a": 1, "sub": Object{"x": 1, "y": 2}}
	d := DeepDelegate(src, Object{"b": 2, "sub": Object{"y": 3}})

	assert.Equal(t, Object{
		"a":   1,
		"b":   2,
		"sub": Object{"x": 1, "y": 3},
	}, Flatten(d))
	assert.Nil(t, Flatten(nil))
}

func TestFlatten_CopiesSlicesOfRecords(t *testing.T) {
	inner := NewDelegate(Object{"k": "v"})
	obj := Object{"items": []any{inner, "s"}}

	flat := Flatten(obj)

	assert.Equal(t, []any{Object{"k": "v"}, "s"}, flat["items"])
	assert.Same(t, inner, obj["items"].([]any)[0])
}

func TestDelegate_String(t *testing.T) {
	d := NewDelegate(Object{"a": 1}, Object{"b": "two"})

	s := d.String()
	assert.Contains(t, s, `"a": (int) 1`)
	assert.Contains(t, s, `"b": (string) (len=3) "two"`)
}
