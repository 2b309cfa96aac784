package repo

import (
	"github.com/SKuzmin/cryptopay/internal/pg"
	accountrepo "github.com/SKuzmin/cryptopay/internal/repo/account-repo"
	payoutrepo "github.com/SKuzmin/cryptopay/internal/repo/payout-repo"
	transactionrepo "github.com/SKuzmin/cryptopay/internal/repo/transaction-repo"
	walletrepo "github.com/SKuzmin/cryptopay/internal/repo/wallet-repo"
	"github.com/SKuzmin/cryptopay/internal/service/identityservice"
	"github.com/SKuzmin/cryptopay/internal/service/ledgerservice"
	"github.com/SKuzmin/cryptopay/internal/service/payoutservice"
	"github.com/SKuzmin/cryptopay/internal/service/walletservice"
)

type Repositories struct {
	AccountRepo     identityservice.Repo
	WalletRepo      walletservice.Repo
	TransactionRepo ledgerservice.Repo
	PayoutRepo      payoutservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn)
	walletRepo := walletrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	payoutRepo := payoutrepo.New(conn, txManager)

	return &Repositories{
		AccountRepo:     accountRepo,
		WalletRepo:      walletRepo,
		TransactionRepo: transactionRepo,
		PayoutRepo:      payoutRepo,
	}
}
