package lang

// Mixin copies the own keys of every source onto target in argument order, so
// later sources overwrite earlier ones and the original target. Values are copied
// by reference. A nil target is replaced by a new Object, nil sources are skipped.
func Mixin(target Object, sources ...Record) Object {
	if target == nil {
		target = Object{}
	}

	for _, source := range sources {
		if source = normalizeRecord(source); source == nil {
			continue
		}

		for _, k := range source.Keys() {
			v, _ := source.Get(k)
			target[k] = v
		}
	}

	return target
}

// DeepMixin is Mixin with recursive merging of mappings. Whenever a source value is
// a mapping, the key receives a new Object holding the deep merge of the current
// target value (when it is a mapping) and the source value. Arrays, functions and
// primitives are assigned as they are. A mapping that recurs inside itself is
// assigned by reference where it recurs.
func DeepMixin(target Object, sources ...Record) Object {
	if target == nil {
		target = Object{}
	}

	seen := ancestors{}

	for _, source := range sources {
		if source = normalizeRecord(source); source == nil {
			continue
		}

		seen.enter(source)
		deepMerge(target, source, seen)
		seen.leave(source)
	}

	return target
}

func deepMerge(target Record, source Record, seen ancestors) {
	for _, k := range source.Keys() {
		v, _ := source.Get(k)

		incoming, ok := AsRecord(v)
		if !ok || !seen.enter(incoming) {
			target.Set(k, v)
			continue
		}

		merged := Object{}

		existing, _ := target.Get(k)
		if current, ok := AsRecord(existing); ok && seen.enter(current) {
			deepMerge(merged, current, seen)
			seen.leave(current)
		}

		deepMerge(merged, incoming, seen)
		seen.leave(incoming)
		target.Set(k, merged)
	}
}
