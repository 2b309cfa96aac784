package sessionservice

import (
	"context"
	"sync"
	"time"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Identity interface {
	Register(ctx context.Context, email, username, secret string, role domain.Role) (*domain.Account, error)
	Authenticate(ctx context.Context, email, secret string) (*domain.Account, error)
}

// Service is the authentication boundary: it delegates credential checks to
// the identity service and tracks active sessions in process memory only.
// At most one session is active per account; a later login replaces the
// earlier session.
type Service struct {
	identity   Identity
	jwtService auth.JWTServiceInterface
	tokenTTL   time.Duration

	mu        sync.Mutex
	sessions  map[string]domain.Session
	byAccount map[string]string
}

func New(identity Identity, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		identity:   identity,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
		sessions:   make(map[string]domain.Session),
		byAccount:  make(map[string]string),
	}
}

func (s *Service) Register(ctx context.Context, email, username, secret string, role domain.Role) (*domain.Account, error) {
	return s.identity.Register(ctx, email, username, secret, role)
}

func (s *Service) Login(ctx context.Context, email, secret string) (string, *domain.Account, error) {
	account, err := s.identity.Authenticate(ctx, email, secret)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	session := domain.Session{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Role:      account.Role,
		IssuedAt:  now,
	}

	s.mu.Lock()
	if old, ok := s.byAccount[account.ID]; ok {
		delete(s.sessions, old)
	}
	s.sessions[session.ID] = session
	s.byAccount[account.ID] = session.ID
	s.mu.Unlock()

	token, err := s.jwtService.GenerateJWT(account.ID, string(account.Role), session.ID, now.Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", nil, err
	}
	return token, account, nil
}

// Logout is idempotent; clearing an unknown or already-cleared session is not
// an error.
func (s *Service) Logout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[sessionID]; ok {
		delete(s.sessions, sessionID)
		if s.byAccount[session.AccountID] == sessionID {
			delete(s.byAccount, session.AccountID)
		}
	}
}

func (s *Service) Principal(sessionID string) (domain.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return domain.Principal{AccountID: session.AccountID, Role: session.Role}, nil
}
