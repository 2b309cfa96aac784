package identityservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (bool, error)
}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
	}
}

// dummyHash is compared against when the email is unknown, so a failed login
// costs the same whether the email exists or not.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, email, username, secret string, role domain.Role) (*domain.Account, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrValidation)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unrecognized role %q", domain.ErrValidation, role)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: secret is required", domain.ErrValidation)
	}

	hashedSecret, err := s.hashService.HashPassword(secret)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hashedSecret,
		Role:         role,
	}
	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	if !created {
		zap.L().Info("account already exists", zap.String("email", email))
		return nil, domain.ErrDuplicateEmail
	}

	zap.L().Info("account registered", zap.String("email", email), zap.String("role", string(role)))
	return account, nil
}

// Authenticate verifies the credentials. Unknown email and wrong secret fail
// identically in both message and timing.
func (s *Service) Authenticate(ctx context.Context, email, secret string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		s.hashService.ComparePassword(dummyHash, secret)
		return nil, domain.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, secret); !ok {
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("account authenticated", zap.String("email", account.Email))
	return account, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
	}
	return account, nil
}
