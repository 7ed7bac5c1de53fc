// Package vector runs regex operations element-wise over recycled inputs.
//
// Every operation takes a [pattern.Store] and a haystack; shorter inputs are
// recycled to the longer length, and a zero-length input yields an empty
// result. A missing haystack element or pattern gives a missing result.
//
// Work is split into contiguous index ranges, one per worker. Each worker
// owns a [matcher.Cache], so runs of the same effective pattern compile once
// per worker. The store itself is shared.
package vector
