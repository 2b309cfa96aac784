package service

import (
	"github.com/SKuzmin/cryptopay/internal/config"
	"github.com/SKuzmin/cryptopay/internal/handlers/auth"
	"github.com/SKuzmin/cryptopay/internal/handlers/ledger"
	"github.com/SKuzmin/cryptopay/internal/handlers/payout"
	"github.com/SKuzmin/cryptopay/internal/handlers/wallet"

	pkgauth "github.com/SKuzmin/cryptopay/pkg/auth"

	"github.com/SKuzmin/cryptopay/internal/repo"
	"github.com/SKuzmin/cryptopay/internal/service/identityservice"
	"github.com/SKuzmin/cryptopay/internal/service/ledgerservice"
	"github.com/SKuzmin/cryptopay/internal/service/payoutservice"
	"github.com/SKuzmin/cryptopay/internal/service/sessionservice"
	"github.com/SKuzmin/cryptopay/internal/service/walletservice"
)

type Services struct {
	AuthService   auth.Service
	WalletService wallet.Service
	LedgerService ledger.Service
	PayoutService payout.Service

	JWTService      pkgauth.JWTServiceInterface
	SessionRegistry pkgauth.SessionRegistry
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.AuthSecret)
	identityService := identityservice.New(repo.AccountRepo, &pkgauth.HashService{})
	sessionService := sessionservice.New(identityService, jwtService, cfg.TokenTTL)
	walletService := walletservice.New(repo.WalletRepo)
	ledgerService := ledgerservice.New(repo.TransactionRepo, cfg.Rates)
	payoutService := payoutservice.New(repo.PayoutRepo, payoutservice.Policy{
		MinWithdrawal: cfg.MinWithdrawal,
		DailyCap:      cfg.DailyCap,
		Fee:           cfg.WithdrawalFee,
		CryptoRate:    cfg.RateFor("BTC"),
	})

	return &Services{
		AuthService:     sessionService,
		WalletService:   walletService,
		LedgerService:   ledgerService,
		PayoutService:   payoutService,
		JWTService:      jwtService,
		SessionRegistry: sessionService,
	}
}
