package payout

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/internal/dto"
	pkgauth "github.com/SKuzmin/cryptopay/pkg/auth"
	"github.com/SKuzmin/cryptopay/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Submit(ctx context.Context, principal domain.Principal, currency string, amount float64, details domain.BankDetails) (*domain.PayoutRequest, error)
	Approve(ctx context.Context, principal domain.Principal, requestID, adminNotes string) (*domain.PayoutRequest, error)
	Reject(ctx context.Context, principal domain.Principal, requestID, adminNotes string) (*domain.PayoutRequest, error)
	Complete(ctx context.Context, principal domain.Principal, requestID string) (*domain.PayoutRequest, error)
	ListFor(ctx context.Context, principal domain.Principal, accountID string) ([]domain.PayoutRequest, error)
	ListByStatus(ctx context.Context, principal domain.Principal, status domain.PayoutStatus) ([]domain.PayoutRequest, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

func toDTO(p *domain.PayoutRequest) dto.PayoutDTO {
	return dto.PayoutDTO{
		ID:           p.ID,
		AccountID:    p.AccountID,
		Currency:     p.Currency,
		Amount:       p.Amount,
		Fee:          p.Fee,
		CryptoAmount: p.CryptoAmount,
		Status:       string(p.Status),
		AdminNotes:   p.AdminNotes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toDTOs(payouts []domain.PayoutRequest) []dto.PayoutDTO {
	response := make([]dto.PayoutDTO, 0, len(payouts))
	for i := range payouts {
		response = append(response, toDTO(&payouts[i]))
	}
	return response
}

// Submit godoc
//
//	@Summary		Submit a withdrawal request
//	@Description	Creates a pending payout request; fee and crypto equivalent are fixed at submission
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.PayoutSubmitRequestDTO	true	"Payout request body"
//	@Success		200		{object}	dto.PayoutDTO
//	@Failure		400		{object}	utils.Response	"Amount or bank details out of policy"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Router			/api/payouts [post]
func (h *PayoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.PayoutSubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	details := domain.BankDetails{
		Kind:          domain.BankDetailsKind(req.BankDetails.Kind),
		AccountNumber: req.BankDetails.AccountNumber,
		BankName:      req.BankDetails.BankName,
		IBAN:          req.BankDetails.IBAN,
		UPI:           req.BankDetails.UPI,
	}
	payout, err := h.payoutService.Submit(r.Context(), principal, req.Currency, req.Amount, details)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(payout))
}

// List godoc
//
//	@Summary		List own payout requests
//	@Tags			Payouts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			account_id	query		string	false	"Account id (admin only, defaults to own account)"
//	@Success		200			{array}		dto.PayoutDTO
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Router			/api/payouts [get]
func (h *PayoutHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		accountID = principal.AccountID
	}
	payouts, err := h.payoutService.ListFor(r.Context(), principal, accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(payouts))
}

// Review godoc
//
//	@Summary		Admin review queue
//	@Tags			Payouts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status	query		string	false	"Payout status"	example(pending)
//	@Success		200		{array}		dto.PayoutDTO
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Router			/api/payouts/review [get]
func (h *PayoutHandler) Review(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	status := domain.PayoutStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.PayoutPending
	}
	payouts, err := h.payoutService.ListByStatus(r.Context(), principal, status)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(payouts))
}

func (h *PayoutHandler) review(w http.ResponseWriter, r *http.Request,
	act func(ctx context.Context, principal domain.Principal, requestID, adminNotes string) (*domain.PayoutRequest, error)) {
	principal, ok := pkgauth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.PayoutReviewRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	payout, err := act(r.Context(), principal, chi.URLParam(r, "id"), req.AdminNotes)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(payout))
}

// Approve godoc
//
//	@Summary		Approve a pending payout request
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Payout request id"
//	@Param			request	body		dto.PayoutReviewRequestDTO	false	"Review notes"
//	@Success		200		{object}	dto.PayoutDTO
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Unknown request"
//	@Failure		409		{object}	utils.Response	"Illegal status transition"
//	@Router			/api/payouts/{id}/approve [post]
func (h *PayoutHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.payoutService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a pending payout request
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Payout request id"
//	@Param			request	body		dto.PayoutReviewRequestDTO	false	"Review notes"
//	@Success		200		{object}	dto.PayoutDTO
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Unknown request"
//	@Failure		409		{object}	utils.Response	"Illegal status transition"
//	@Router			/api/payouts/{id}/reject [post]
func (h *PayoutHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.payoutService.Reject)
}

// Complete godoc
//
//	@Summary		Settle an approved payout request
//	@Description	Moves the request to completed and records the settlement in the ledger
//	@Tags			Payouts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Payout request id"
//	@Success		200	{object}	dto.PayoutDTO
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Unknown request"
//	@Failure		409	{object}	utils.Response	"Illegal status transition"
//	@Router			/api/payouts/{id}/complete [post]
func (h *PayoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(ctx context.Context, principal domain.Principal, requestID, _ string) (*domain.PayoutRequest, error) {
		return h.payoutService.Complete(ctx, principal, requestID)
	})
}
