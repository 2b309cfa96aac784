package transactionrepo

import (
	"context"
	"fmt"

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

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (id, account_id, type, currency, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		txn.ID, txn.AccountID, txn.Type, txn.Currency, txn.Amount, txn.Status).
		Scan(&txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := r.db.QueryRow(ctx,
		"SELECT id, account_id, type, currency, amount, status, created_at FROM transactions WHERE id = $1", id).
		Scan(&txn.ID, &txn.AccountID, &txn.Type, &txn.Currency, &txn.Amount, &txn.Status, &txn.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

// UpdateStatus advances a transaction from one status to another. The source
// status sits in the predicate, so a record can only move forward and a stale
// writer affects zero rows.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.TxStatus) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE transactions SET status = $3 WHERE id = $1 AND status = $2", id, from, to)
	if err != nil {
		zap.L().Error("can't update transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) List(ctx context.Context, accountID string, filter domain.TxFilter) ([]domain.Transaction, error) {
	query := `
        SELECT id, account_id, type, currency, amount, status, created_at
        FROM transactions
        WHERE account_id = $1
    `
	args := []any{accountID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (id::text ILIKE $%d OR currency ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.AccountID, &txn.Type, &txn.Currency, &txn.Amount, &txn.Status, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

// SumByCurrency recomputes holdings from the full log: deposits and
// conversions credit, withdrawals and payments debit, failed rows are ignored.
func (r *Repository) SumByCurrency(ctx context.Context, accountID string) ([]domain.Holding, error) {
	query := `
        SELECT currency,
               SUM(CASE WHEN type IN ('deposit', 'conversion') THEN amount ELSE -amount END) AS amount
        FROM transactions
        WHERE account_id = $1 AND status <> 'failed'
        GROUP BY currency
        ORDER BY currency
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to aggregate holdings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var holdings []domain.Holding
	for rows.Next() {
		var h domain.Holding
		if err := rows.Scan(&h.Currency, &h.Amount); err != nil {
			zap.L().Error("failed to scan holding row", zap.Error(err))
			return nil, err
		}
		holdings = append(holdings, h)
	}

	return holdings, nil
}
