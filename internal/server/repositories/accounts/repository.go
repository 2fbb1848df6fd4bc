package accounts

import (
	"context"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Account, error)
	Upsert(ctx context.Context, accountID int64, credentialHash string) error
	Delete(ctx context.Context, accountID int64) error
}
