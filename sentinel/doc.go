// Package sentinel provides the sentinel catalog: for every leaf type it
// knows, two canonical and distinguishable values ("left" and "right") plus a
// predicate telling whether a value is the left one.
//
// The catalog resolves a type in this order:
//   - an explicit registration (built-ins, Register, RegisterFunc, RegisterEnum)
//   - composition by shape: *T wraps T's pair, []T and map[T]struct{} hold a
//     single element, map[K]V maps K's left sentinel to either V sentinel
//   - named types over bool, number or string kinds convert the pair of
//     their underlying type
//
// Anything else, structs in particular, has no pair and yields
// ErrNotReflectable. Structs are decoded structurally by the probing
// decoder instead.
package sentinel
