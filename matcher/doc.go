// Package matcher hands out compiled matchers for the positions of a
// vectorized regex operation.
//
// A [Cache] holds at most one compiled matcher together with the store index
// it was compiled for. Asking for position i resolves i mod n; if that index
// is the cached one the same matcher is returned, otherwise the old matcher
// is released and the pattern at the new index is compiled. A caller sweeping
// positions whose effective pattern repeats pays one compilation per run.
//
// Reuse is keyed on the index, not the pattern text: two slots holding the
// same text compile separately.
//
// Returned matchers are borrowed. They stay valid until the next Get that
// resolves to a different index, or until Close.
//
// A Cache is not safe for concurrent use. Give each worker its own Cache over
// a shared [pattern.Store].
package matcher
