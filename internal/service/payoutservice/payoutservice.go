package payoutservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, p *domain.PayoutRequest) (*domain.PayoutRequest, error)
	FindByID(ctx context.Context, id string) (*domain.PayoutRequest, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.PayoutRequest, error)
	ListByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.PayoutRequest, error)
	SumSince(ctx context.Context, accountID string, since time.Time) (float64, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.PayoutStatus, adminNotes string) (bool, error)
	Settle(ctx context.Context, id string, txn *domain.Transaction) (bool, error)
}

// Policy holds the withdrawal rules in force at submission time. Fee and
// crypto rate are frozen onto each request when it is created, so later
// policy changes never move an already-submitted settlement amount.
type Policy struct {
	MinWithdrawal float64
	DailyCap      float64
	Fee           float64
	CryptoRate    float64
}

type Service struct {
	payoutRepo Repo
	policy     Policy
}

func New(repo Repo, policy Policy) *Service {
	return &Service{
		payoutRepo: repo,
		policy:     policy,
	}
}

const capWindow = 24 * time.Hour

func validateBankDetails(details domain.BankDetails) error {
	switch details.Kind {
	case domain.BankDetailsBank:
		if details.AccountNumber == "" {
			return fmt.Errorf("%w: bank transfer requires an account number", domain.ErrValidation)
		}
		if details.BankName == "" {
			return fmt.Errorf("%w: bank transfer requires a bank name", domain.ErrValidation)
		}
	case domain.BankDetailsUPI:
		if details.UPI == "" {
			return fmt.Errorf("%w: upi transfer requires a upi id", domain.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unrecognized bank details kind %q", domain.ErrValidation, details.Kind)
	}
	return nil
}

func (s *Service) Submit(ctx context.Context, principal domain.Principal, currency string, amount float64, details domain.BankDetails) (*domain.PayoutRequest, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	if amount < s.policy.MinWithdrawal {
		return nil, fmt.Errorf("%w: amount %.2f is below the minimum withdrawal %.2f",
			domain.ErrValidation, amount, s.policy.MinWithdrawal)
	}
	if err := validateBankDetails(details); err != nil {
		return nil, err
	}

	windowSum, err := s.payoutRepo.SumSince(ctx, principal.AccountID, time.Now().Add(-capWindow))
	if err != nil {
		return nil, err
	}
	if windowSum+amount > s.policy.DailyCap {
		return nil, fmt.Errorf("%w: amount %.2f exceeds the daily cap %.2f",
			domain.ErrValidation, amount, s.policy.DailyCap)
	}

	var cryptoAmount float64
	if s.policy.CryptoRate > 0 {
		cryptoAmount = amount / s.policy.CryptoRate
	}
	payout := &domain.PayoutRequest{
		ID:           uuid.NewString(),
		AccountID:    principal.AccountID,
		Currency:     currency,
		Amount:       amount,
		Fee:          s.policy.Fee,
		CryptoAmount: cryptoAmount,
		BankDetails:  details,
		Status:       domain.PayoutPending,
	}
	payout, err = s.payoutRepo.Create(ctx, payout)
	if err != nil {
		zap.L().Error("can't create payout request", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payout request submitted",
		zap.String("id", payout.ID), zap.String("account_id", payout.AccountID), zap.Float64("amount", amount))
	return payout, nil
}

// transition moves a request between review states. The repo re-validates the
// source state in the write itself; when that write affects nothing, the
// record is re-read to tell an unknown id from an illegal transition.
func (s *Service) transition(ctx context.Context, id string, from, to domain.PayoutStatus, adminNotes string) (*domain.PayoutRequest, error) {
	ok, err := s.payoutRepo.UpdateStatus(ctx, id, from, to, adminNotes)
	if err != nil {
		return nil, err
	}
	if !ok {
		existing, err := s.payoutRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("%w: payout request %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidStateTransition, existing.Status, to)
	}
	payout, err := s.payoutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	zap.L().Info("payout request moved",
		zap.String("id", id), zap.String("from", string(from)), zap.String("to", string(to)))
	return payout, nil
}

func (s *Service) Approve(ctx context.Context, principal domain.Principal, requestID, adminNotes string) (*domain.PayoutRequest, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: payout review requires the admin role", domain.ErrAuthorization)
	}
	return s.transition(ctx, requestID, domain.PayoutPending, domain.PayoutApproved, adminNotes)
}

func (s *Service) Reject(ctx context.Context, principal domain.Principal, requestID, adminNotes string) (*domain.PayoutRequest, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: payout review requires the admin role", domain.ErrAuthorization)
	}
	return s.transition(ctx, requestID, domain.PayoutPending, domain.PayoutRejected, adminNotes)
}

// Complete settles an approved request: the status moves to completed and a
// completed withdrawal transaction for the net amount lands in the ledger,
// both in one database transaction.
func (s *Service) Complete(ctx context.Context, principal domain.Principal, requestID string) (*domain.PayoutRequest, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: payout settlement requires the admin role", domain.ErrAuthorization)
	}
	payout, err := s.payoutRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, fmt.Errorf("%w: payout request %s", domain.ErrNotFound, requestID)
	}

	net := payout.Amount - payout.Fee
	if net <= 0 {
		net = payout.Amount
	}
	txn := &domain.Transaction{
		ID:        uuid.NewString(),
		AccountID: payout.AccountID,
		Type:      domain.TxWithdrawal,
		Currency:  payout.Currency,
		Amount:    net,
		Status:    domain.TxCompleted,
	}
	settled, err := s.payoutRepo.Settle(ctx, requestID, txn)
	if err != nil {
		zap.L().Error("can't settle payout request", zap.Error(err))
		return nil, err
	}
	if !settled {
		// Re-read: a concurrent reviewer may have moved the request since
		// the lookup above.
		if current, err := s.payoutRepo.FindByID(ctx, requestID); err == nil && current != nil {
			payout = current
		}
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidStateTransition, payout.Status, domain.PayoutCompleted)
	}

	zap.L().Info("payout request settled", zap.String("id", requestID), zap.Float64("net", net))
	return s.payoutRepo.FindByID(ctx, requestID)
}

func (s *Service) ListFor(ctx context.Context, principal domain.Principal, accountID string) ([]domain.PayoutRequest, error) {
	if !principal.CanActFor(accountID) {
		return nil, fmt.Errorf("%w: payout history belongs to another account", domain.ErrAuthorization)
	}
	return s.payoutRepo.ListByAccount(ctx, accountID)
}

func (s *Service) ListByStatus(ctx context.Context, principal domain.Principal, status domain.PayoutStatus) ([]domain.PayoutRequest, error) {
	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: the review queue requires the admin role", domain.ErrAuthorization)
	}
	return s.payoutRepo.ListByStatus(ctx, status)
}
