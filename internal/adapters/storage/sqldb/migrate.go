package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Columns added to transferts after the first schema revision shipped.
// Databases created back then lack them; EnsureTransfertsColumns brings
// such databases forward without touching data.
var requiredTransfertColumns = []struct {
	name    string
	sqlType string
}{
	{"animal_type", "VARCHAR(20)"},
	{"animal_id", "INTEGER"},
	{"chien_id", "INTEGER"},
}

// columnAdder abstracts "does this column exist / add this column"
// across the two datastore families. Postgres has conditional DDL;
// SQLite does not and must re-check right before each addition.
type columnAdder interface {
	tableColumns(ctx context.Context, table string) (map[string]struct{}, error)
	addColumn(ctx context.Context, table, name, sqlType string) error
}

// EnsureTransfertsColumns is idempotent: any number of runs converges
// to the same column set and never fails on an existing column. A
// failing or empty table probe means the table does not exist yet, and
// the full-schema creation step owns that case.
func EnsureTransfertsColumns(ctx context.Context, db *sqlx.DB, log zerolog.Logger) error {
	var ddl columnAdder
	if db.DriverName() == DriverPostgres {
		ddl = postgresDDL{db: db}
	} else {
		ddl = sqliteDDL{db: db}
	}

	existing, err := ddl.tableColumns(ctx, "transferts")
	if err != nil || len(existing) == 0 {
		return nil
	}

	for _, col := range requiredTransfertColumns {
		if _, ok := existing[col.name]; ok {
			continue
		}
		if err := ddl.addColumn(ctx, "transferts", col.name, col.sqlType); err != nil {
			return fmt.Errorf("add column %s: %w", col.name, err)
		}
		log.Info().Str("table", "transferts").Str("column", col.name).Msg("migration: column added")
	}
	return nil
}

type postgresDDL struct {
	db *sqlx.DB
}

func (p postgresDDL) tableColumns(ctx context.Context, table string) (map[string]struct{}, error) {
	var names []string
	err := p.db.SelectContext(ctx, &names,
		`SELECT column_name FROM information_schema.columns WHERE table_name = $1`, table)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out, nil
}

func (p postgresDDL) addColumn(ctx context.Context, table, name, sqlType string) error {
	_, err := p.db.ExecContext(ctx,
		fmt.Sprintf(`ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s`, table, name, sqlType))
	return err
}

type sqliteDDL struct {
	db *sqlx.DB
}

func (s sqliteDDL) tableColumns(ctx context.Context, table string) (map[string]struct{}, error) {
	var names []string
	err := s.db.SelectContext(ctx, &names, `SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out, nil
}

// No ADD COLUMN IF NOT EXISTS on SQLite: re-probe immediately before
// the statement so a column added since the initial inspection does not
// make the whole step fail.
func (s sqliteDDL) addColumn(ctx context.Context, table, name, sqlType string) error {
	current, err := s.tableColumns(ctx, table)
	if err != nil {
		return err
	}
	if _, ok := current[name]; ok {
		return nil
	}
	_, err = s.db.ExecContext(ctx,
		fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, name, sqlType))
	return err
}
