package walletservice

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Find(ctx context.Context, accountID, currency string) (*domain.WalletAddress, error)
	CreateIfAbsent(ctx context.Context, addr *domain.WalletAddress) (bool, error)
}

type Service struct {
	walletRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		walletRepo: repo,
	}
}

var addrEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func opaqueAddress(currency string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return currency + strings.ToLower(addrEncoding.EncodeToString(buf)), nil
}

// GetOrCreateAddress returns the account's deposit address for the currency,
// allocating it on first request. Repeated calls always return the identical
// address: the pair (account, currency) is unique in storage and a lost
// create race falls back to the winning record.
func (s *Service) GetOrCreateAddress(ctx context.Context, principal domain.Principal, accountID, currency string) (string, error) {
	if !principal.CanActFor(accountID) {
		return "", fmt.Errorf("%w: address belongs to another account", domain.ErrAuthorization)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return "", fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}

	existing, err := s.walletRepo.Find(ctx, accountID, currency)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Address, nil
	}

	// One initial attempt plus one retry on conflict, then give up.
	for attempt := 0; attempt < 2; attempt++ {
		address, err := opaqueAddress(currency)
		if err != nil {
			zap.L().Error("can't generate address", zap.Error(err))
			return "", err
		}
		addr := &domain.WalletAddress{AccountID: accountID, Currency: currency, Address: address}
		created, err := s.walletRepo.CreateIfAbsent(ctx, addr)
		if err != nil {
			return "", err
		}
		if created {
			zap.L().Info("deposit address allocated",
				zap.String("account_id", accountID), zap.String("currency", currency))
			return addr.Address, nil
		}

		// Lost the race: discard our value and take the winner's.
		winner, err := s.walletRepo.Find(ctx, accountID, currency)
		if err != nil {
			return "", err
		}
		if winner != nil {
			return winner.Address, nil
		}
	}

	return "", fmt.Errorf("%w: address allocation for %s/%s", domain.ErrConflict, accountID, currency)
}
