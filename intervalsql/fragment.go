// Package intervalsql renders interval predicates as SQL over two integer
// columns holding projected bounds, with the same semantics as the
// predicates of package interval.
package intervalsql

import (
	"bytes"
	"database/sql"
	_ "embed"
	"fmt"
	"regexp"
	"text/template"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

//go:embed sql/predicate.tmpl.sql
var predicateTemplate string

var predicates = template.Must(template.New("predicate").Parse(predicateTemplate))

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var ErrInvalidColumns = errors.New("invalid columns")

// Bounded is anything with projected bounds, every interval.Interval among
// them.
type Bounded interface {
	Bounds() (int64, int64)
}

type Mode int

const (
	Open Mode = iota
	Closed
)

func (m Mode) String() string {
	switch m {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type QueryFragment struct {
	Query     string
	NamedArgs []sql.NamedArg
}

func (q QueryFragment) Args() []any {
	return lo.Map(q.NamedArgs, func(arg sql.NamedArg, _ int) any {
		return arg
	})
}

// Columns names the table and the columns holding the projected from and
// to scalars.
type Columns struct {
	Table string
	From  string
	To    string
}

func (c Columns) validate() error {
	names := []string{c.Table, c.From, c.To}
	if bad, ok := lo.Find(names, func(name string) bool { return !identifier.MatchString(name) }); ok {
		return errors.Wrapf(ErrInvalidColumns, "%q is not an identifier", bad)
	}
	return nil
}

// Contains matches rows whose interval contains the point with the given
// scalar, bounds included.
func Contains(cols Columns, point int64) (QueryFragment, error) {
	return render("contains", cols, sql.Named("iv_point", point))
}

// Equals matches rows with exactly the bounds of b.
func Equals(cols Columns, b Bounded) (QueryFragment, error) {
	from, to := b.Bounds()
	return render("equals", cols, sql.Named("iv_from", from), sql.Named("iv_to", to))
}

// Overlaps matches rows overlapping b, treating both sides as open or
// closed intervals.
func Overlaps(cols Columns, b Bounded, mode Mode) (QueryFragment, error) {
	var name string
	switch mode {
	case Open:
		name = "overlaps_open"
	case Closed:
		name = "overlaps_closed"
	default:
		return QueryFragment{}, errors.Errorf("unknown overlap mode %s", mode)
	}

	from, to := b.Bounds()
	return render(name, cols, sql.Named("iv_from", from), sql.Named("iv_to", to))
}

func render(name string, cols Columns, args ...sql.NamedArg) (QueryFragment, error) {
	if err := cols.validate(); err != nil {
		return QueryFragment{}, err
	}

	var buf bytes.Buffer
	if err := predicates.ExecuteTemplate(&buf, name, cols); err != nil {
		return QueryFragment{}, errors.Wrapf(err, "rendering %s", name)
	}

	return QueryFragment{
		Query:     buf.String(),
		NamedArgs: args,
	}, nil
}

// Filter prefixes query with a CTE named after the table with a trailing $,
// restricted to the rows matching where. The query selects from that CTE:
//
//	Filter(cols, where, "SELECT id FROM shifts$ ORDER BY id")
func Filter(cols Columns, where QueryFragment, query string, args ...sql.NamedArg) (QueryFragment, error) {
	if err := cols.validate(); err != nil {
		return QueryFragment{}, err
	}

	return QueryFragment{
		Query:     fmt.Sprintf("WITH %s$ AS (SELECT * FROM %s WHERE %s)\n%s", cols.Table, cols.Table, where.Query, query),
		NamedArgs: append(append([]sql.NamedArg{}, where.NamedArgs...), args...),
	}, nil
}
