// Package pattern holds the pattern side of a vectorized regex operation.
//
// A [Store] is an immutable sequence of optional pattern texts already
// expanded to the operation's recycling length n. Position i always resolves
// to entry i mod n, so callers sweeping a longer index space never go out of
// range. A Store can be shared read-only by any number of goroutines.
package pattern
