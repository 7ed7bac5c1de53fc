// Package cast coerces loosely typed configuration values.
//
// Values arriving from a configuration mapping may be scalars, one-element
// slices, pointers or decoded JSON numbers. [To] unwraps them to a single
// scalar, refuses missing values, and converts the result. Integer targets go
// through [safemath] so overflow and truncation are reported instead of being
// silently applied; everything else goes through [cast].
package cast
