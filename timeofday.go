package interval

import "cloud.google.com/go/civil"

// TimeOfDayProjection projects a time of day onto seconds since midnight of
// 1970-01-01 UTC. All times share that one day, so an interval cannot wrap
// past midnight: 23:00-01:00 is rejected and has to be split in two.
type TimeOfDayProjection struct{}

func (TimeOfDayProjection) Scalar(t civil.Time) int64 {
	return int64(t.Hour)*3600 + int64(t.Minute)*60 + int64(t.Second)
}

// Valid accepts the zero civil.Time, which is midnight.
func (TimeOfDayProjection) Valid(t civil.Time) bool {
	return t.IsValid()
}

type TimeOfDayInterval = Interval[civil.Time, TimeOfDayProjection]

func NewTimeOfDayInterval(from, to civil.Time) (TimeOfDayInterval, error) {
	return New[civil.Time, TimeOfDayProjection](from, to)
}
