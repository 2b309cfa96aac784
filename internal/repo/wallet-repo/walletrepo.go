package walletrepo

import (
	"context"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Find(ctx context.Context, accountID, currency string) (*domain.WalletAddress, error) {
	var addr domain.WalletAddress
	err := r.db.QueryRow(ctx,
		"SELECT account_id, currency, address, created_at FROM wallet_addresses WHERE account_id = $1 AND currency = $2",
		accountID, currency).
		Scan(&addr.AccountID, &addr.Currency, &addr.Address, &addr.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find wallet address", zap.Error(err))
		return nil, err
	}
	return &addr, nil
}

// CreateIfAbsent writes the address unless one already exists for the
// (account, currency) pair. Returns false when a concurrent caller won the
// race; the caller must then re-read the winning record.
func (r *Repository) CreateIfAbsent(ctx context.Context, addr *domain.WalletAddress) (bool, error) {
	query := `
		INSERT INTO wallet_addresses (account_id, currency, address)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, currency) DO NOTHING
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, addr.AccountID, addr.Currency, addr.Address).Scan(&addr.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't save wallet address", zap.Error(err))
		return false, err
	}
	return true, nil
}
