package handlers

import (
	"net/http"

	_ "github.com/SKuzmin/cryptopay/docs"
	"github.com/SKuzmin/cryptopay/internal/domain"
	authhandlers "github.com/SKuzmin/cryptopay/internal/handlers/auth"
	ledgerhandlers "github.com/SKuzmin/cryptopay/internal/handlers/ledger"
	payouthandlers "github.com/SKuzmin/cryptopay/internal/handlers/payout"
	wallethandlers "github.com/SKuzmin/cryptopay/internal/handlers/wallet"
	"github.com/SKuzmin/cryptopay/internal/service"
	pkgauth "github.com/SKuzmin/cryptopay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetAddress(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetHoldings(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	WalletHandler WalletHandler
	LedgerHandler LedgerHandler
	PayoutHandler PayoutHandler

	jwtService pkgauth.JWTServiceInterface
	sessions   pkgauth.SessionRegistry
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService, s.JWTService),
		WalletHandler: wallethandlers.New(s.WalletService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
		PayoutHandler: payouthandlers.New(s.PayoutService),
		jwtService:    s.JWTService,
		sessions:      s.SessionRegistry,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(pkgauth.AuthMiddleware(h.jwtService, h.sessions))
				r.Post("/logout", h.AuthHandler.Logout)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(pkgauth.AuthMiddleware(h.jwtService, h.sessions))
			r.Get("/wallet/address/{currency}", h.WalletHandler.GetAddress)
			r.Get("/transactions", h.LedgerHandler.GetTransactions)
			r.Get("/holdings", h.LedgerHandler.GetHoldings)
			r.Route("/payouts", func(r chi.Router) {
				r.Post("/", h.PayoutHandler.Submit)
				r.Get("/", h.PayoutHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(pkgauth.RequireRole(domain.RoleAdmin))
					r.Get("/review", h.PayoutHandler.Review)
					r.Post("/{id}/approve", h.PayoutHandler.Approve)
					r.Post("/{id}/reject", h.PayoutHandler.Reject)
					r.Post("/{id}/complete", h.PayoutHandler.Complete)
				})
			})
		})
	})

	return r
}
