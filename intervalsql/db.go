package intervalsql

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/pkg/errors"
)

var pragmas = []string{
	"PRAGMA journal_mode = MEMORY",
	"PRAGMA synchronous = OFF",
	"PRAGMA temp_store = MEMORY",
}

type DB struct {
	db *sql.DB
}

// NewDB checks the connection and applies the SQLite pragmas the predicates
// are tuned for.
func NewDB(ctx context.Context, database *sql.DB) (*DB, error) {
	if err := database.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "ping")
	}

	for _, pragma := range pragmas {
		if _, err := database.ExecContext(ctx, pragma); err != nil {
			return nil, errors.Wrapf(err, "applying %q", pragma)
		}
	}

	return &DB{database}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Query(ctx context.Context, fragment QueryFragment) (*sql.Rows, error) {
	slog.Debug("Query", "query", fragment.Query, "args", fragment.NamedArgs)
	rows, err := d.db.QueryContext(ctx, fragment.Query, fragment.Args()...)
	return rows, errors.Wrap(err, "query")
}

// IDs runs fragment and collects the single int64 column it selects.
func (d *DB) IDs(ctx context.Context, fragment QueryFragment) ([]int64, error) {
	rows, err := d.Query(ctx, fragment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan")
		}
		ids = append(ids, id)
	}
	return ids, errors.Wrap(rows.Err(), "rows")
}
