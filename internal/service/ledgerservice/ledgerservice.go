package ledgerservice

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.TxStatus) (bool, error)
	List(ctx context.Context, accountID string, filter domain.TxFilter) ([]domain.Transaction, error)
	SumByCurrency(ctx context.Context, accountID string) ([]domain.Holding, error)
}

type Service struct {
	txRepo Repo
	rates  map[string]float64
}

func New(repo Repo, rates map[string]float64) *Service {
	return &Service{
		txRepo: repo,
		rates:  rates,
	}
}

func (s *Service) Record(ctx context.Context, accountID string, txType domain.TxType, currency string, amount float64, status domain.TxStatus) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: unrecognized transaction type %q", domain.ErrValidation, txType)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unrecognized transaction status %q", domain.ErrValidation, status)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}

	txn := &domain.Transaction{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Type:      txType,
		Currency:  currency,
		Amount:    amount,
		Status:    status,
	}
	txn, err := s.txRepo.Create(ctx, txn)
	if err != nil {
		zap.L().Error("can't record transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// MarkStatus advances a pending transaction to completed or failed. Records
// never reopen; any other movement is rejected.
func (s *Service) MarkStatus(ctx context.Context, id string, to domain.TxStatus) error {
	if to != domain.TxCompleted && to != domain.TxFailed {
		return fmt.Errorf("%w: pending → %s", domain.ErrInvalidStateTransition, to)
	}
	ok, err := s.txRepo.UpdateStatus(ctx, id, domain.TxPending, to)
	if err != nil {
		return err
	}
	if !ok {
		existing, err := s.txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%w: transaction %s", domain.ErrNotFound, id)
		}
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidStateTransition, existing.Status, to)
	}
	return nil
}

// ListFor returns a lazy sequence of the account's transactions, newest
// first. The query runs when the sequence is ranged over, and ranging again
// re-queries, so the sequence is restartable and always current.
func (s *Service) ListFor(ctx context.Context, principal domain.Principal, accountID string, filter domain.TxFilter) (iter.Seq2[domain.Transaction, error], error) {
	if !principal.CanActFor(accountID) {
		return nil, fmt.Errorf("%w: ledger belongs to another account", domain.ErrAuthorization)
	}
	return func(yield func(domain.Transaction, error) bool) {
		txns, err := s.txRepo.List(ctx, accountID, filter)
		if err != nil {
			zap.L().Error("failed to list transactions", zap.Error(err))
			yield(domain.Transaction{}, err)
			return
		}
		for _, txn := range txns {
			if !yield(txn, nil) {
				return
			}
		}
	}, nil
}

// AggregateHoldings recomputes per-currency positions from the transaction
// log and values them with the configured rates. There is no maintained
// running balance to drift from the log.
func (s *Service) AggregateHoldings(ctx context.Context, principal domain.Principal, accountID string) ([]domain.Holding, float64, error) {
	if !principal.CanActFor(accountID) {
		return nil, 0, fmt.Errorf("%w: ledger belongs to another account", domain.ErrAuthorization)
	}
	holdings, err := s.txRepo.SumByCurrency(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	var totalUSD float64
	for i := range holdings {
		holdings[i].USDValue = holdings[i].Amount * s.rates[holdings[i].Currency]
		totalUSD += holdings[i].USDValue
	}
	return holdings, totalUSD, nil
}
