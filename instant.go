package interval

import (
	"time"

	"cloud.google.com/go/civil"
)

// InstantProjection projects a date-time onto seconds since the Unix epoch.
// The wall clock is read as UTC and sub-second precision is dropped, so
// callers holding zoned values must normalize them first.
type InstantProjection struct{}

func (InstantProjection) Scalar(dt civil.DateTime) int64 {
	return dt.In(time.UTC).Unix()
}

func (InstantProjection) Valid(dt civil.DateTime) bool {
	return dt.IsValid()
}

type InstantInterval = Interval[civil.DateTime, InstantProjection]

func NewInstantInterval(from, to civil.DateTime) (InstantInterval, error) {
	return New[civil.DateTime, InstantProjection](from, to)
}
