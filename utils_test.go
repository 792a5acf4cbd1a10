package interval_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/pborges/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustHelpers(t *testing.T) {
	assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 2}, interval.MustDate(" 2024-01-02 "))
	assert.Equal(t, interval.MustDateTime("2024-01-02T03:04:05"), interval.MustDateTime("2024-01-02 03:04:05"))
	assert.Equal(t, civil.Time{Hour: 3, Minute: 4, Second: 5}, interval.MustTime("03:04:05"))

	dt, err := interval.ParseDateTime(" 2024-01-02 03:04:05 ")
	require.NoError(t, err)
	assert.Equal(t, civil.DateTime{
		Date: civil.Date{Year: 2024, Month: 1, Day: 2},
		Time: civil.Time{Hour: 3, Minute: 4, Second: 5},
	}, dt)
	_, err = interval.ParseDateTime("2024-01-02")
	require.Error(t, err)

	assert.Panics(t, func() { interval.MustDate("2024-13-01") })
	assert.Panics(t, func() { interval.MustDateTime("yesterday") })
	assert.Panics(t, func() { interval.MustTime("25:00:00") })
}
