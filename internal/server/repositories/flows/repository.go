package flows

import (
	"context"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, samples []models.FlowSample) error
	Aggregate(ctx context.Context, window models.FlowWindow) ([]models.AccountFlow, error)
	Purge(ctx context.Context, window models.FlowWindow) (int64, error)
	Drain(ctx context.Context, window models.FlowWindow) ([]models.AccountFlow, int64, error)
}
