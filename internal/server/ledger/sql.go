package ledger

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/dbx"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/migrations"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/repositories/flows"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type dialect struct {
	sqlDriver    string
	gooseDialect string
	migrations   string
}

var dialects = map[string]dialect{
	DriverSQLite:   {sqlDriver: "sqlite", gooseDialect: "sqlite3", migrations: "sqlite"},
	DriverPostgres: {sqlDriver: "pgx", gooseDialect: "pgx", migrations: "postgres"},
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// SQLLedger implements Ledger on top of sqlx and the per-table repositories.
type SQLLedger struct {
	db       *sqlx.DB
	accounts accounts.Repository
	flows    flows.Repository
}

// Open connects to the database for driver ("sqlite" or "postgres"), checks
// connectivity and applies pending migrations.
func Open(ctx context.Context, driver, dsn string) (*SQLLedger, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(d.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		// a single connection serializes writers instead of failing with SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(ctx, db.DB, d); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sqlx.DB) *SQLLedger {
	return &SQLLedger{
		db:       db,
		accounts: accounts.NewSQLRepository(db),
		flows:    flows.NewSQLRepository(db),
	}
}

func runMigrations(ctx context.Context, db *sql.DB, d dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(d.gooseDialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, d.migrations)
}

func (l *SQLLedger) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return l.accounts.List(ctx)
}

func (l *SQLLedger) UpsertAccount(ctx context.Context, accountID int64, credentialHash string) error {
	return l.accounts.Upsert(ctx, accountID, credentialHash)
}

func (l *SQLLedger) DeleteAccount(ctx context.Context, accountID int64) error {
	return l.accounts.Delete(ctx, accountID)
}

func (l *SQLLedger) AggregateFlow(ctx context.Context, window models.FlowWindow) ([]models.AccountFlow, error) {
	return l.flows.Aggregate(ctx, window)
}

func (l *SQLLedger) PurgeFlow(ctx context.Context, window models.FlowWindow) (int64, error) {
	return l.flows.Purge(ctx, window)
}

func (l *SQLLedger) DrainFlow(ctx context.Context, window models.FlowWindow) ([]models.AccountFlow, int64, error) {
	return l.flows.Drain(ctx, window)
}

// RecordFlows stores all samples in one transaction.
func (l *SQLLedger) RecordFlows(ctx context.Context, samples []models.FlowSample) error {
	if len(samples) == 0 {
		return nil
	}
	return dbx.WithTx(ctx, l.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return flows.NewSQLRepository(tx).Insert(ctx, samples)
	})
}

func (l *SQLLedger) Close() error {
	return l.db.Close()
}
