// Package lang provides helpers for working with plain string-keyed objects
// and callables that take an explicit receiver.
//
// # Objects and records
//
// Object is the plain mapping (map[string]any). Record is the interface every
// mapping-like value satisfies: Object itself, *Delegate, and any Go map with
// string keys once adapted with AsRecord.
//
// # Paths
//
// GetProperty, Lookup, Resolve and SetProperty address nested values with
// dot-separated paths such as "server.tls.cert". Reads never panic on a broken
// path; SetProperty materializes missing intermediate objects.
//
// # Composition
//
//   - Mixin copies the own keys of each source onto a target, later sources winning.
//   - DeepMixin does the same but merges nested objects into fresh Objects.
//   - NewDelegate builds a two-tier record that falls back to a source record
//     for keys it does not define itself.
//   - DeepDelegate also delegates nested objects to their counterparts in the source.
//
// # Callables
//
// Func receives its receiver explicitly. Bind fixes the receiver and a prefix of
// arguments, BindMethod looks the method up by name on every call, and Partial
// fixes only the argument prefix. A nil receiver binds to the Binder's global
// object (the package-level Global for the top-level functions).
package lang
