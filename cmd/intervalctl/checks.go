package main

import (
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pborges/interval"
	"github.com/pkg/errors"
)

const (
	kindDate    = "date"
	kindInstant = "instant"
	kindTime    = "time"
)

var kinds = []string{kindDate, kindInstant, kindTime}

type check struct {
	Name   string
	Result bool
}

func containsChecks(kind, from, to string, points []string) (string, []check, error) {
	switch kind {
	case kindDate:
		return contains[civil.Date, interval.DateProjection](civil.ParseDate, from, to, points)
	case kindInstant:
		return contains[civil.DateTime, interval.InstantProjection](interval.ParseDateTime, from, to, points)
	case kindTime:
		return contains[civil.Time, interval.TimeOfDayProjection](civil.ParseTime, from, to, points)
	}
	return "", nil, errors.Errorf("unknown kind %q, expected one of %s", kind, strings.Join(kinds, ", "))
}

func compareChecks(kind, from, to, otherFrom, otherTo string) (string, []check, error) {
	switch kind {
	case kindDate:
		return compare[civil.Date, interval.DateProjection](civil.ParseDate, from, to, otherFrom, otherTo)
	case kindInstant:
		return compare[civil.DateTime, interval.InstantProjection](interval.ParseDateTime, from, to, otherFrom, otherTo)
	case kindTime:
		return compare[civil.Time, interval.TimeOfDayProjection](civil.ParseTime, from, to, otherFrom, otherTo)
	}
	return "", nil, errors.Errorf("unknown kind %q, expected one of %s", kind, strings.Join(kinds, ", "))
}

func parseInterval[T any, P interval.Projection[T]](parse func(string) (T, error), from, to string) (interval.Interval[T, P], error) {
	f, err := parse(from)
	if err != nil {
		return interval.Interval[T, P]{}, errors.Wrapf(err, "parsing from %q", from)
	}
	t, err := parse(to)
	if err != nil {
		return interval.Interval[T, P]{}, errors.Wrapf(err, "parsing to %q", to)
	}
	return interval.New[T, P](f, t)
}

func contains[T any, P interval.Projection[T]](parse func(string) (T, error), from, to string, points []string) (string, []check, error) {
	i, err := parseInterval[T, P](parse, from, to)
	if err != nil {
		return "", nil, err
	}

	checks := make([]check, 0, len(points))
	for _, raw := range points {
		point, err := parse(raw)
		if err != nil {
			return "", nil, errors.Wrapf(err, "parsing point %q", raw)
		}
		checks = append(checks, check{Name: "contains " + raw, Result: i.Contains(point)})
	}
	return i.String(), checks, nil
}

func compare[T any, P interval.Projection[T]](parse func(string) (T, error), from, to, otherFrom, otherTo string) (string, []check, error) {
	i, err := parseInterval[T, P](parse, from, to)
	if err != nil {
		return "", nil, err
	}
	other, err := parseInterval[T, P](parse, otherFrom, otherTo)
	if err != nil {
		return "", nil, errors.Wrap(err, "other")
	}

	return i.String() + " vs " + other.String(), []check{
		{Name: "equal", Result: i.Equal(other)},
		{Name: "overlaps-open", Result: i.OverlapsAsOpen(other)},
		{Name: "overlaps-closed", Result: i.OverlapsAsClosed(other)},
		{Name: "contains other from", Result: i.Contains(other.From())},
		{Name: "contains other to", Result: i.Contains(other.To())},
	}, nil
}

func renderChecks(w io.Writer, title string, checks []check) error {
	table := tablewriter.NewTable(w)
	table.Header([]string{"Interval", "Check", "Result"})
	for _, c := range checks {
		result := color.RedString(strconv.FormatBool(c.Result))
		if c.Result {
			result = color.GreenString(strconv.FormatBool(c.Result))
		}
		if err := table.Append([]string{title, c.Name, result}); err != nil {
			return errors.Wrap(err, "appending row")
		}
	}
	return errors.Wrap(table.Render(), "rendering table")
}
