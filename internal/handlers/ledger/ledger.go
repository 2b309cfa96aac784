package ledger

import (
	"context"
	"iter"
	"net/http"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/internal/dto"
	pkgauth "github.com/SKuzmin/cryptopay/pkg/auth"
	"github.com/SKuzmin/cryptopay/pkg/utils"
)

type Service interface {
	ListFor(ctx context.Context, principal domain.Principal, accountID string, filter domain.TxFilter) (iter.Seq2[domain.Transaction, error], error)
	AggregateHoldings(ctx context.Context, principal domain.Principal, accountID string) ([]domain.Holding, float64, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

func targetAccount(r *http.Request, principal domain.Principal) string {
	if accountID := r.URL.Query().Get("account_id"); accountID != "" {
		return accountID
	}
	return principal.AccountID
}

// GetTransactions godoc
//
//	@Summary		List transactions
//	@Description	The account's transactions, newest first, optionally filtered by type, status or a search term
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Param			type		query		string	false	"Transaction type"		example(deposit)
//	@Param			status		query		string	false	"Transaction status"	example(completed)
//	@Param			q			query		string	false	"Substring of id or currency"
//	@Param			account_id	query		string	false	"Account id (admin only, defaults to own account)"
//	@Success		200			{array}		dto.TransactionDTO
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		403			{object}	utils.Response	"Ledger belongs to another account"
//	@Router			/api/transactions [get]
func (h *LedgerHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	filter := domain.TxFilter{
		Type:   domain.TxType(r.URL.Query().Get("type")),
		Status: domain.TxStatus(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("q"),
	}

	seq, err := h.ledgerService.ListFor(r.Context(), principal, targetAccount(r, principal), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	response := make([]dto.TransactionDTO, 0)
	for txn, err := range seq {
		if err != nil {
			utils.RespondWithDomainError(w, err)
			return
		}
		response = append(response, dto.TransactionDTO{
			ID:        txn.ID,
			Type:      string(txn.Type),
			Currency:  txn.Currency,
			Amount:    txn.Amount,
			Status:    string(txn.Status),
			CreatedAt: txn.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetHoldings godoc
//
//	@Summary		Aggregate holdings
//	@Description	Per-currency positions recomputed from the transaction log, valued in USD
//	@Tags			Ledger
//	@Produce		json
//	@Security		BearerAuth
//	@Param			account_id	query		string	false	"Account id (admin only, defaults to own account)"
//	@Success		200			{object}	dto.HoldingsResponseDTO
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		403			{object}	utils.Response	"Ledger belongs to another account"
//	@Router			/api/holdings [get]
func (h *LedgerHandler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	holdings, totalUSD, err := h.ledgerService.AggregateHoldings(r.Context(), principal, targetAccount(r, principal))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	response := dto.HoldingsResponseDTO{Holdings: make([]dto.HoldingDTO, 0, len(holdings)), TotalUSD: totalUSD}
	for _, h := range holdings {
		response.Holdings = append(response.Holdings, dto.HoldingDTO{
			Currency: h.Currency,
			Amount:   h.Amount,
			USDValue: h.USDValue,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
