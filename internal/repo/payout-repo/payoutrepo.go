package payoutrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const payoutColumns = "id, account_id, currency, amount, fee, crypto_amount, bank_details, status, admin_notes, created_at, updated_at"

func scanPayout(row pgx.Row) (*domain.PayoutRequest, error) {
	var p domain.PayoutRequest
	var details []byte
	err := row.Scan(&p.ID, &p.AccountID, &p.Currency, &p.Amount, &p.Fee, &p.CryptoAmount,
		&details, &p.Status, &p.AdminNotes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(details, &p.BankDetails); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.PayoutRequest) (*domain.PayoutRequest, error) {
	details, err := json.Marshal(p.BankDetails)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO payout_requests (id, account_id, currency, amount, fee, crypto_amount, bank_details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		p.ID, p.AccountID, p.Currency, p.Amount, p.Fee, p.CryptoAmount, details, p.Status).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save payout request", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.PayoutRequest, error) {
	p, err := scanPayout(r.db.QueryRow(ctx,
		"SELECT "+payoutColumns+" FROM payout_requests WHERE id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payout request", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.PayoutRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch payout requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.PayoutRequest
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, *p)
	}
	return payouts, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID string) ([]domain.PayoutRequest, error) {
	return r.list(ctx,
		"SELECT "+payoutColumns+" FROM payout_requests WHERE account_id = $1 ORDER BY created_at DESC", accountID)
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.PayoutRequest, error) {
	return r.list(ctx,
		"SELECT "+payoutColumns+" FROM payout_requests WHERE status = $1 ORDER BY created_at DESC", status)
}

// SumSince totals the account's requests created after the cutoff that still
// count against the daily cap (pending, approved or completed).
func (r *Repository) SumSince(ctx context.Context, accountID string, since time.Time) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx, `
        SELECT COALESCE(SUM(amount), 0)
        FROM payout_requests
        WHERE account_id = $1 AND created_at >= $2 AND status IN ('pending', 'approved', 'completed')
    `, accountID, since).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum payout requests", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// UpdateStatus moves a request from one status to another. The expected
// source status sits in the UPDATE predicate: when two reviewers race, the
// second affects zero rows and the caller reports the illegal transition.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.PayoutStatus, adminNotes string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE payout_requests
        SET status = $3, admin_notes = $4, updated_at = now()
        WHERE id = $1 AND status = $2
    `, id, from, to, adminNotes)
	if err != nil {
		zap.L().Error("can't update payout status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Settle finalizes an approved request and records the settlement ledger
// transaction in the same database transaction.
func (r *Repository) Settle(ctx context.Context, id string, txn *domain.Transaction) (bool, error) {
	var settled bool
	err := r.txManager.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE payout_requests
            SET status = $3, updated_at = now()
            WHERE id = $1 AND status = $2
        `, id, domain.PayoutApproved, domain.PayoutCompleted)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO transactions (id, account_id, type, currency, amount, status)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, txn.ID, txn.AccountID, txn.Type, txn.Currency, txn.Amount, txn.Status)
		if err != nil {
			return err
		}
		settled = true
		return nil
	})
	if err != nil {
		zap.L().Error("can't settle payout request", zap.Error(err))
		return false, err
	}
	return settled, nil
}
