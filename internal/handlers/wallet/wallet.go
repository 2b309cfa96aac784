package wallet

import (
	"context"
	"net/http"
	"strings"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/internal/dto"
	pkgauth "github.com/SKuzmin/cryptopay/pkg/auth"
	"github.com/SKuzmin/cryptopay/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetOrCreateAddress(ctx context.Context, principal domain.Principal, accountID, currency string) (string, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetAddress godoc
//
//	@Summary		Get the deposit address for a currency
//	@Description	Returns the account's deposit address, allocating one on first request. Idempotent.
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Param			currency	path		string	true	"Currency code"	example(BTC)
//	@Param			account_id	query		string	false	"Account id (admin only, defaults to own account)"
//	@Success		200			{object}	dto.AddressResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid currency"
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		403			{object}	utils.Response	"Address belongs to another account"
//	@Router			/api/wallet/address/{currency} [get]
func (h *WalletHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		accountID = principal.AccountID
	}
	currency := chi.URLParam(r, "currency")

	address, err := h.walletService.GetOrCreateAddress(r.Context(), principal, accountID, currency)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddressResponseDTO{
		Currency: strings.ToUpper(strings.TrimSpace(currency)),
		Address:  address,
	})
}
