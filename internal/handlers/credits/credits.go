package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/dto"
	"github.com/velozapp/veloz/internal/service/creditservice"
	"github.com/velozapp/veloz/pkg/auth"
	"github.com/velozapp/veloz/pkg/codes"
	"github.com/velozapp/veloz/pkg/utils"
)

type Service interface {
	RedeemCode(ctx context.Context, code string, riderID, actorID int) (*domain.CreditAccount, error)
	GenerateCode(ctx context.Context, amount int64, actorID int, riderHint *int) (*domain.RechargeCode, error)
	VoidCode(ctx context.Context, code string, actorID int) error
	ManualAdjustment(ctx context.Context, ownerType string, ownerID int, amount int64, note string, actorID int) (*domain.CreditAccount, error)
	GetBalance(ctx context.Context, ownerType string, ownerID int) (*domain.CreditAccount, error)
	ListTransactions(ctx context.Context, ownerType string, ownerID, limit, offset int) ([]domain.CreditTransaction, error)
}

type CreditHandler struct {
	creditService Service
}

func New(creditService Service) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

// Redeem godoc
//
//	@Summary		Redeem a recharge code
//	@Description	Credit a rider account with the amount of a pending recharge code. Each code can be redeemed exactly once.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Code and rider"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Account after recharge"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		404		{object}	utils.Response			"Code not found"
//	@Failure		409		{object}	utils.Response			"Code already redeemed or voided"
//	@Failure		422		{object}	utils.Response			"Malformed code"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/redeem [post]
func (h *CreditHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.ActorIDKey).(int)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !codes.IsValid(req.Code) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "malformed recharge code")
		return
	}

	account, err := h.creditService.RedeemCode(r.Context(), req.Code, req.RiderID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrCodeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, creditservice.ErrCodeAlreadyRedeemed), errors.Is(err, creditservice.ErrCodeVoided):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, creditservice.ErrUnknownParty):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(account))
}

// GenerateCode godoc
//
//	@Summary		Generate a recharge code
//	@Description	Create a single-use recharge code for the given amount. Admin only.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GenerateCodeRequestDTO	true	"Amount and optional rider hint"
//	@Success		201		{object}	dto.CodeResponseDTO			"Created code"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		403		{object}	utils.Response				"Forbidden"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/credits/codes [post]
func (h *CreditHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.ActorIDKey).(int)

	var req dto.GenerateCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	code, err := h.creditService.GenerateCode(r.Context(), req.Amount, actorID, req.RiderHint)
	if err != nil {
		if errors.Is(err, creditservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CodeResponseDTO{
		Code:      code.Code,
		Amount:    code.Amount,
		Status:    code.Status,
		CreatedAt: code.CreatedAt,
	})
}

// VoidCode godoc
//
//	@Summary		Void a recharge code
//	@Description	Invalidate a pending recharge code so it can no longer be redeemed. Admin only.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string			true	"Recharge code"
//	@Success		200		{object}	utils.Response	"Code voided"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Code not found"
//	@Failure		409		{object}	utils.Response	"Code already redeemed or voided"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/credits/codes/{code}/void [post]
func (h *CreditHandler) VoidCode(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.ActorIDKey).(int)
	code := chi.URLParam(r, "code")

	if err := h.creditService.VoidCode(r.Context(), code, actorID); err != nil {
		switch {
		case errors.Is(err, creditservice.ErrCodeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, creditservice.ErrCodeAlreadyRedeemed), errors.Is(err, creditservice.ErrCodeVoided):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "code voided"})
}

// Adjust godoc
//
//	@Summary		Apply a manual balance adjustment
//	@Description	Credit or debit an account by an arbitrary amount with a mandatory explanatory note. Admin only.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustmentRequestDTO	true	"Adjustment payload"
//	@Success		200		{object}	dto.BalanceResponseDTO		"Account after adjustment"
//	@Failure		400		{object}	utils.Response				"Invalid payload or note too short"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		403		{object}	utils.Response				"Forbidden"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/credits/adjust [post]
func (h *CreditHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.ActorIDKey).(int)

	var req dto.AdjustmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.creditService.ManualAdjustment(r.Context(), req.EntityType, req.EntityID, req.Amount, req.Note, actorID)
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrUnknownAccount):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, creditservice.ErrNoteTooShort), errors.Is(err, creditservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(account))
}

// GetBalance godoc
//
//	@Summary		Get an account balance
//	@Description	Retrieve the current balance and lifetime totals for a rider or restaurant credit account.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type	path		string					true	"rider or restaurant"
//	@Param			id		path		int						true	"Owner ID"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Account balance"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/{type}/{id} [get]
func (h *CreditHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	account, err := h.creditService.GetBalance(r.Context(), chi.URLParam(r, "type"), ownerID)
	if err != nil {
		if errors.Is(err, creditservice.ErrUnknownAccount) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(account))
}

// ListTransactions godoc
//
//	@Summary		Get account transaction history
//	@Description	List ledger entries for an account, newest first.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type	path		string						true	"rider or restaurant"
//	@Param			id		path		int							true	"Owner ID"
//	@Param			limit	query		int							false	"Page size"
//	@Param			offset	query		int							false	"Page offset"
//	@Success		200		{array}		dto.TransactionResponseDTO	"Ledger entries"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/credits/{type}/{id}/transactions [get]
func (h *CreditHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid owner id")
		return
	}
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	transactions, err := h.creditService.ListTransactions(r.Context(), chi.URLParam(r, "type"), ownerID, limit, offset)
	if err != nil {
		if errors.Is(err, creditservice.ErrUnknownAccount) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:            t.ID,
			Type:          t.Type,
			Amount:        t.Amount,
			BalanceBefore: t.BalanceBefore,
			BalanceAfter:  t.BalanceAfter,
			OrderID:       t.OrderID,
			Note:          t.Note,
			CreatedAt:     t.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toBalanceDTO(account *domain.CreditAccount) dto.BalanceResponseDTO {
	return dto.BalanceResponseDTO{
		OwnerType:       account.OwnerType,
		OwnerID:         account.OwnerID,
		Balance:         account.Balance,
		TotalEarned:     account.TotalEarned,
		TotalLiquidated: account.TotalLiquidated,
	}
}
