package cast

import (
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// IntersectionType is a type constraint that matches types that are both
// [cast.Basic] and [safemath.Integer].
type IntersectionType interface {
	cast.Basic
	safemath.Integer
}

// Type is the set of targets supported by [To].
type Type interface {
	bool | int | int32 | int64 | uint32
}
