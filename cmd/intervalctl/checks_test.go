package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/pborges/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsChecks(t *testing.T) {
	title, checks, err := containsChecks(kindDate, "2024-01-01", "2024-01-31", []string{"2024-01-15", "2024-01-31", "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, "[2024-01-01, 2024-01-31]", title)
	assert.Equal(t, []check{
		{Name: "contains 2024-01-15", Result: true},
		{Name: "contains 2024-01-31", Result: true},
		{Name: "contains 2024-02-01", Result: false},
	}, checks)

	_, checks, err = containsChecks(kindInstant, "2024-01-01 08:00:00", "2024-01-01T17:00:00", []string{"2024-01-01 17:00:01"})
	require.NoError(t, err)
	assert.Equal(t, []check{{Name: "contains 2024-01-01 17:00:01", Result: false}}, checks)
}

func TestCompareChecks(t *testing.T) {
	title, checks, err := compareChecks(kindDate, "2024-01-01", "2024-01-31", "2024-01-31", "2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, "[2024-01-01, 2024-01-31] vs [2024-01-31, 2024-02-15]", title)
	assert.Equal(t, []check{
		{Name: "equal", Result: false},
		{Name: "overlaps-open", Result: false},
		{Name: "overlaps-closed", Result: true},
		{Name: "contains other from", Result: true},
		{Name: "contains other to", Result: false},
	}, checks)
}

func TestChecksErrors(t *testing.T) {
	_, _, err := compareChecks(kindTime, "23:00:00", "01:00:00", "01:00:00", "02:00:00")
	require.ErrorIs(t, err, interval.ErrInvalidRange)

	_, _, err = compareChecks(kindTime, "01:00:00", "02:00:00", "02:00:00", "01:00:00")
	require.ErrorIs(t, err, interval.ErrInvalidRange)

	_, _, err = containsChecks(kindDate, "2024-01-01", "2024-01-31", []string{"soon"})
	require.Error(t, err)

	_, _, err = containsChecks(kindDate, "2024-02-30", "2024-03-31", nil)
	require.Error(t, err)

	_, _, err = containsChecks("week", "1", "2", nil)
	require.ErrorContains(t, err, "unknown kind")
}

func TestRenderChecks(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	require.NoError(t, renderChecks(&buf, "[01:00:00, 02:00:00]", []check{
		{Name: "equal", Result: true},
		{Name: "overlaps-open", Result: false},
	}))

	out := buf.String()
	assert.Contains(t, out, "[01:00:00, 02:00:00]")
	assert.Contains(t, out, "overlaps-open")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "false")
}
