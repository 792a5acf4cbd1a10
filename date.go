package interval

import "cloud.google.com/go/civil"

var epochDate = civil.Date{Year: 1970, Month: 1, Day: 1}

// DateProjection projects a date onto its day number since 1970-01-01.
type DateProjection struct{}

func (DateProjection) Scalar(d civil.Date) int64 {
	return int64(d.DaysSince(epochDate))
}

func (DateProjection) Valid(d civil.Date) bool {
	return d.IsValid()
}

type DateInterval = Interval[civil.Date, DateProjection]

func NewDateInterval(from, to civil.Date) (DateInterval, error) {
	return New[civil.Date, DateProjection](from, to)
}
