package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/dbx"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

// SQLRepository works on both the postgres and sqlite schemas; queries are
// written with '?' placeholders and rebound for the driver in use.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Account, error) {
	query :=
		`SELECT account_id, credential_hash FROM accounts
		 ORDER BY account_id`

	accounts := []models.Account{}
	if err := r.db.SelectContext(ctx, &accounts, r.db.Rebind(query)); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return accounts, nil
}

func (r *SQLRepository) Upsert(ctx context.Context, accountID int64, credentialHash string) error {
	query :=
		`INSERT INTO accounts (account_id, credential_hash)
		 VALUES (?, ?)
		 ON CONFLICT (account_id) DO UPDATE
		 SET credential_hash = excluded.credential_hash, updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), accountID, credentialHash); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// Delete removes the account. Deleting an unknown id is not an error.
func (r *SQLRepository) Delete(ctx context.Context, accountID int64) error {
	query := `DELETE FROM accounts WHERE account_id = ?`

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), accountID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
