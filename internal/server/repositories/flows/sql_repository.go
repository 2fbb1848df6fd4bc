package flows

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/dbx"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

// SQLRepository stores observed_at as Unix milliseconds so window bounds
// compare the same way on every dialect.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// Insert writes one row per sample. Callers wanting all-or-nothing
// semantics pass a transaction.
func (r *SQLRepository) Insert(ctx context.Context, samples []models.FlowSample) error {
	query :=
		`INSERT INTO flows (account_id, byte_count, observed_at)
		 VALUES (?, ?, ?)`
	query = r.db.Rebind(query)

	for _, s := range samples {
		if _, err := r.db.ExecContext(ctx, query, s.AccountID, s.ByteCount, s.ObservedAt.UnixMilli()); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	return nil
}

func (r *SQLRepository) Aggregate(ctx context.Context, window models.FlowWindow) ([]models.AccountFlow, error) {
	query :=
		`SELECT account_id, CAST(SUM(byte_count) AS BIGINT) AS total_bytes FROM flows
		 WHERE observed_at >= ? AND observed_at < ?
		 GROUP BY account_id
		 ORDER BY account_id`

	flows := []models.AccountFlow{}
	err := r.db.SelectContext(ctx, &flows, r.db.Rebind(query),
		window.Start.UnixMilli(), window.End.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return flows, nil
}

// Purge deletes the samples inside window and returns how many were removed.
func (r *SQLRepository) Purge(ctx context.Context, window models.FlowWindow) (int64, error) {
	query := `DELETE FROM flows WHERE observed_at >= ? AND observed_at < ?`

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), window.Start.UnixMilli(), window.End.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

// Drain deletes the samples inside window and sums exactly the rows the
// DELETE removed. A sample committed while Drain runs is either both counted
// and deleted or left in place.
func (r *SQLRepository) Drain(ctx context.Context, window models.FlowWindow) ([]models.AccountFlow, int64, error) {
	query :=
		`DELETE FROM flows
		 WHERE observed_at >= ? AND observed_at < ?
		 RETURNING account_id, byte_count`

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), window.Start.UnixMilli(), window.End.UnixMilli())
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	sums := map[int64]int64{}
	var n int64
	for rows.Next() {
		var accountID, byteCount int64
		if err := rows.Scan(&accountID, &byteCount); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		sums[accountID] += byteCount
		n++
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	flows := make([]models.AccountFlow, 0, len(sums))
	for id, total := range sums {
		flows = append(flows, models.AccountFlow{AccountID: id, TotalBytes: total})
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].AccountID < flows[j].AccountID })

	return flows, n, nil
}
