// Package ledger is the durable store of accounts and harvested flow samples.
package ledger

import (
	"context"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

// Ledger must tolerate concurrent callers. Each method is atomic on its own;
// nothing spans two calls.
type Ledger interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	UpsertAccount(ctx context.Context, accountID int64, credentialHash string) error
	DeleteAccount(ctx context.Context, accountID int64) error
	AggregateFlow(ctx context.Context, window models.FlowWindow) ([]models.AccountFlow, error)
	PurgeFlow(ctx context.Context, window models.FlowWindow) (int64, error)
	// DrainFlow aggregates and deletes the samples in window as one step and
	// returns the totals together with the number of samples removed.
	DrainFlow(ctx context.Context, window models.FlowWindow) ([]models.AccountFlow, int64, error)
	RecordFlows(ctx context.Context, samples []models.FlowSample) error
	Close() error
}
