package cast

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

var (
	// ErrMissing is returned for nil values and nil pointers.
	ErrMissing = errors.New("cast: missing value")

	// ErrNotSingle is returned for slices and arrays whose length is not one.
	ErrNotSingle = errors.New("cast: expected a single value")

	// ErrFraction is returned when a float with a fractional part is
	// converted to an integer.
	ErrFraction = errors.New("cast: value has a fractional part")
)

// To converts v to type T.
func To[T Type](v any) (T, error) {
	var zero T

	v, err := Single(v)
	if err != nil {
		return zero, err
	}

	switch any(zero).(type) {
	case bool:
		return toBase[T, bool](v)
	case int:
		return toIntOrBase[T, int](v)
	case int32:
		return toIntOrBase[T, int32](v)
	case int64:
		return toIntOrBase[T, int64](v)
	case uint32:
		return toIntOrBase[T, uint32](v)
	default:
		return zero, errors.Newf("cast: unsupported target %T", zero)
	}
}

// Single unwraps v to one scalar: pointers are dereferenced and one-element
// slices or arrays are replaced by their element. Nil and nil pointers are
// [ErrMissing]; other slice lengths are [ErrNotSingle].
func Single(v any) (any, error) {
	if v == nil {
		return nil, ErrMissing
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, ErrMissing
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, ErrMissing
		}
		if rv.Len() != 1 {
			return nil, errors.Wrapf(ErrNotSingle, "got %d values", rv.Len())
		}
		return Single(rv.Index(0).Interface())
	}

	return rv.Interface(), nil
}

// toInt converts to the integer type I using safemath to avoid
// overflow/underflow and then re-types the result as T.
func toInt[T any, I Integer](v any) (T, error) {
	converted, err := safemath.ConvertAny[I](v)
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "cast: %v", v)
	}

	return any(converted).(T), nil
}

// toBase converts to the basic type B using spf13/cast and re-types the
// result as T.
func toBase[T any, B cast.Basic](v any) (T, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toIntOrBase converts v to the integer type I. Integers and integral
// numbers go through safemath; other values through cast.ToE.
func toIntOrBase[T any, I IntersectionType](v any) (T, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				var zero T
				return zero, errors.Wrapf(err, "cast: %q", n.String())
			}
			return fromFloat[T, I](f)
		}
		return toInt[T, I](i)
	case float32:
		return fromFloat[T, I](float64(n))
	case float64:
		return fromFloat[T, I](n)
	}

	if isIntVal(v) {
		return toInt[T, I](v)
	}

	return toBase[T, I](v)
}

func fromFloat[T any, I Integer](f float64) (T, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		var zero T
		return zero, ErrMissing
	}
	if f != math.Trunc(f) {
		var zero T
		return zero, errors.Wrapf(ErrFraction, "%v", f)
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		var zero T
		return zero, errors.Newf("cast: %v is out of range", f)
	}

	return toInt[T, I](int64(f))
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
