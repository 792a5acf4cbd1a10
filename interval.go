// Package interval provides closed intervals over dates, date-times and
// times of day with containment and overlap queries.
//
// Every comparison is done on a scalar projection of the points, supplied
// per kind by a Projection. The projection is part of the interval's type,
// so intervals of different kinds cannot be compared with each other.
package interval

import (
	"fmt"

	"github.com/pkg/errors"
)

// Projection maps points of kind T onto a single linear timeline.
//
// Scalar must be strictly monotonic with the natural ordering of T.
// Valid reports whether a point is present and well formed.
type Projection[T any] interface {
	Scalar(point T) int64
	Valid(point T) bool
}

// Interval is the closed range [from, to]. The zero value is not a valid
// interval; use New or one of the per-kind constructors.
type Interval[T any, P Projection[T]] struct {
	from T
	to   T
}

// New returns the interval [from, to]. It fails with ErrInvalidArgument if
// either point is absent and with ErrInvalidRange unless from is strictly
// before to.
func New[T any, P Projection[T]](from, to T) (Interval[T, P], error) {
	var p P
	if !p.Valid(from) {
		return Interval[T, P]{}, errors.Wrapf(ErrInvalidArgument, "from %v", from)
	}
	if !p.Valid(to) {
		return Interval[T, P]{}, errors.Wrapf(ErrInvalidArgument, "to %v", to)
	}
	if p.Scalar(from) >= p.Scalar(to) {
		return Interval[T, P]{}, errors.Wrapf(ErrInvalidRange, "from %v must be before to %v", from, to)
	}

	return Interval[T, P]{from: from, to: to}, nil
}

func (i Interval[T, P]) From() T {
	return i.from
}

func (i Interval[T, P]) To() T {
	return i.to
}

// Bounds returns the projected scalars of from and to.
func (i Interval[T, P]) Bounds() (int64, int64) {
	var p P
	return p.Scalar(i.from), p.Scalar(i.to)
}

// Contains reports whether point lies in the interval, bounds included.
// An absent or malformed point is never contained.
func (i Interval[T, P]) Contains(point T) bool {
	var p P
	if !p.Valid(point) {
		return false
	}
	s := p.Scalar(point)
	from, to := i.Bounds()
	return from <= s && s <= to
}

// Equal reports whether both bounds project to the same scalars. Unlike ==
// it ignores differences the projection does not see, such as sub-second
// precision of an instant.
func (i Interval[T, P]) Equal(other Interval[T, P]) bool {
	from, to := i.Bounds()
	otherFrom, otherTo := other.Bounds()
	return from == otherFrom && to == otherTo
}

// OverlapsAsOpen treats both intervals as open, so intervals that only
// touch at a bound do not overlap:
//
//	|----i----|
//	          |----other----|
func (i Interval[T, P]) OverlapsAsOpen(other Interval[T, P]) bool {
	from, to := i.Bounds()
	otherFrom, otherTo := other.Bounds()
	return from < otherTo && otherFrom < to
}

// OverlapsAsClosed treats both intervals as closed, so intervals that touch
// at a bound do overlap.
func (i Interval[T, P]) OverlapsAsClosed(other Interval[T, P]) bool {
	from, to := i.Bounds()
	otherFrom, otherTo := other.Bounds()
	return from <= otherTo && otherFrom <= to
}

func (i Interval[T, P]) String() string {
	return fmt.Sprintf("[%v, %v]", i.from, i.to)
}
