package settlements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/dto"
	"github.com/velozapp/veloz/internal/service/settlementservice"
	"github.com/velozapp/veloz/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Preview(ctx context.Context, in settlementservice.Input) (*domain.Settlement, error)
	Create(ctx context.Context, in settlementservice.Input) (*domain.Settlement, error)
	UpdateStatus(ctx context.Context, id int, newStatus string, fuelAdjustment *int64) (*domain.Settlement, error)
	List(ctx context.Context, filter settlementservice.ListFilter) ([]domain.Settlement, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

// Create godoc
//
//	@Summary		Create a settlement for a period
//	@Description	Aggregate delivered orders for a rider or restaurant over a date range into a payable settlement. With dry_run the settlement is computed but not persisted.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSettlementRequestDTO	true	"Settlement period and manual amounts"
//	@Success		201		{object}	dto.SettlementResponseDTO		"Created settlement"
//	@Success		200		{object}	dto.SettlementResponseDTO		"Dry-run preview"
//	@Failure		400		{object}	utils.Response					"Invalid payload"
//	@Failure		401		{object}	utils.Response					"Not authorized"
//	@Failure		404		{object}	utils.Response					"Entity not found"
//	@Failure		409		{object}	utils.Response					"Period overlaps an existing settlement"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/settlements [post]
func (h *SettlementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSettlementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	periodStart, err := time.Parse(dateLayout, req.PeriodStart)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid period_start")
		return
	}
	periodEnd, err := time.Parse(dateLayout, req.PeriodEnd)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid period_end")
		return
	}

	in := settlementservice.Input{
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Bonuses:     req.Bonuses,
		Fuel:        req.Fuel,
		Notes:       req.Notes,
	}

	var settlement *domain.Settlement
	if req.DryRun {
		settlement, err = h.settlementService.Preview(r.Context(), in)
	} else {
		settlement, err = h.settlementService.Create(r.Context(), in)
	}
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrOverlappingPeriod):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, settlementservice.ErrUnknownEntity):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, settlementservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	status := http.StatusCreated
	if req.DryRun {
		status = http.StatusOK
	}
	utils.RespondWithJSON(w, status, toSettlementDTO(settlement))
}

// UpdateStatus godoc
//
//	@Summary		Update a settlement
//	@Description	Change a settlement status between pending, paid and disputed, optionally correcting the fuel reimbursement for rider settlements.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Settlement ID"
//	@Param			request	body		dto.UpdateSettlementRequestDTO	true	"New status and optional fuel correction"
//	@Success		200		{object}	dto.SettlementResponseDTO		"Updated settlement"
//	@Failure		400		{object}	utils.Response					"Invalid payload"
//	@Failure		401		{object}	utils.Response					"Not authorized"
//	@Failure		404		{object}	utils.Response					"Settlement not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/settlements/{id} [patch]
func (h *SettlementHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid settlement id")
		return
	}

	var req dto.UpdateSettlementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settlement, err := h.settlementService.UpdateStatus(r.Context(), id, req.Status, req.FuelAdjustment)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrSettlementNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, settlementservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toSettlementDTO(settlement))
}

// List godoc
//
//	@Summary		List settlements
//	@Description	List settlements filtered by entity, status and month, newest first.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Produce		json
//	@Param			entity_type	query		string						false	"rider or restaurant"
//	@Param			entity_id	query		int							false	"Entity ID"
//	@Param			status		query		string						false	"pending, paid or disputed"
//	@Param			month		query		string						false	"Month filter, e.g. 2026-08"
//	@Param			limit		query		int							false	"Page size, max 100"
//	@Param			offset		query		int							false	"Page offset"
//	@Success		200			{array}		dto.SettlementResponseDTO	"Settlements"
//	@Failure		401			{object}	utils.Response				"Not authorized"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/settlements [get]
func (h *SettlementHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entityID, _ := strconv.Atoi(q.Get("entity_id"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	settlements, err := h.settlementService.List(r.Context(), settlementservice.ListFilter{
		EntityType: q.Get("entity_type"),
		EntityID:   entityID,
		Status:     q.Get("status"),
		Month:      q.Get("month"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.SettlementResponseDTO, len(settlements))
	for i := range settlements {
		response[i] = toSettlementDTO(&settlements[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toSettlementDTO(s *domain.Settlement) dto.SettlementResponseDTO {
	return dto.SettlementResponseDTO{
		ID:                s.ID,
		EntityType:        s.EntityType,
		EntityID:          s.EntityID,
		PeriodStart:       s.PeriodStart.Format(dateLayout),
		PeriodEnd:         s.PeriodEnd.Format(dateLayout),
		OrdersCount:       s.OrdersCount,
		GrossSales:        s.GrossSales,
		CashCollected:     s.CashCollected,
		POSCollected:      s.POSCollected,
		DigitalCollected:  s.DigitalCollected,
		DeliveryFees:      s.DeliveryFees,
		Commission:        s.Commission,
		Bonuses:           s.Bonuses,
		FuelReimbursement: s.FuelReimbursement,
		NetPayout:         s.NetPayout,
		Status:            s.Status,
		Notes:             s.Notes,
		PaidAt:            s.PaidAt,
	}
}
