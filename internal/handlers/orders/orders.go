package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/dto"
	"github.com/velozapp/veloz/internal/service/orderservice"
	"github.com/velozapp/veloz/pkg/auth"
	"github.com/velozapp/veloz/pkg/feecalc"
	"github.com/velozapp/veloz/pkg/utils"
)

type Service interface {
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	History(ctx context.Context, orderID int) ([]domain.StatusTransition, error)
	Transition(ctx context.Context, orderID int, target string, actorID int, in orderservice.TransitionInput) (*domain.Order, error)
}

type CoverageChecker interface {
	CheckCoverage(ctx context.Context, lat, lng float64) (*feecalc.Coverage, error)
}

type OrderHandler struct {
	orderService Service
	coverage     CoverageChecker
}

func New(orderService Service, coverage CoverageChecker) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		coverage:     coverage,
	}
}

// Transition godoc
//
//	@Summary		Apply a lifecycle transition to an order
//	@Description	Move an order to the requested status. The transition is validated against the lifecycle graph and, for terminal statuses, against the required evidence.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order ID"
//	@Param			request	body		dto.TransitionRequestDTO	true	"Transition payload"
//	@Success		200		{object}	dto.OrderResponseDTO		"Order after the transition"
//	@Failure		400		{object}	utils.Response				"Invalid payload or missing evidence"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		404		{object}	utils.Response				"Order not found"
//	@Failure		409		{object}	utils.Response				"Transition not allowed from the current status"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders/{id}/transition [post]
func (h *OrderHandler) Transition(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.ActorIDKey).(int)

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.TransitionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Transition(r.Context(), orderID, req.Status, actorID, orderservice.TransitionInput{
		RiderID:             req.RiderID,
		Notes:               req.Notes,
		RejectReason:        req.RejectReason,
		ActualPaymentMethod: req.ActualPaymentMethod,
		DeliveryProofURL:    req.DeliveryProofURL,
		PaymentProofURL:     req.PaymentProofURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, orderservice.ErrMissingEvidence), errors.Is(err, orderservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Description	Retrieve a single order with its current status and financial breakdown.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Order ID"
//	@Success		200	{object}	dto.OrderResponseDTO	"Order"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		404	{object}	utils.Response			"Order not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// History godoc
//
//	@Summary		Get order transition history
//	@Description	Retrieve the audit trail of status transitions for an order, oldest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Order ID"
//	@Success		200	{array}		dto.TransitionHistoryDTO	"Transition history"
//	@Failure		401	{object}	utils.Response				"Not authorized"
//	@Failure		404	{object}	utils.Response				"Order not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/orders/{id}/history [get]
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	history, err := h.orderService.History(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransitionHistoryDTO, len(history))
	for i, t := range history {
		response[i] = dto.TransitionHistoryDTO{
			From:      t.FromStatus,
			To:        t.ToStatus,
			ActorID:   t.ActorID,
			Notes:     t.Notes,
			CreatedAt: t.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Coverage godoc
//
//	@Summary		Check delivery coverage for a location
//	@Description	Ask the fee calculator whether a point is inside a delivery zone and what the base fee would be.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			lat	query		number					true	"Latitude"
//	@Param			lng	query		number					true	"Longitude"
//	@Success		200	{object}	dto.CoverageResponseDTO	"Coverage result"
//	@Failure		400	{object}	utils.Response			"Invalid coordinates"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		502	{object}	utils.Response			"Fee calculator unavailable"
//	@Router			/api/orders/coverage [get]
func (h *OrderHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid coordinates")
		return
	}

	coverage, err := h.coverage.CheckCoverage(r.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, feecalc.ErrNoCoverage) {
			utils.RespondWithJSON(w, http.StatusOK, dto.CoverageResponseDTO{HasCoverage: false})
			return
		}
		utils.RespondWithError(w, http.StatusBadGateway, "fee calculator unavailable")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CoverageResponseDTO{
		HasCoverage: coverage.HasCoverage,
		BaseFee:     coverage.BaseFee,
		ZoneID:      coverage.ZoneID,
	})
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:                  order.ID,
		Code:                order.Code,
		Status:              order.Status,
		RestaurantID:        order.RestaurantID,
		RiderID:             order.RiderID,
		Subtotal:            order.Subtotal,
		DeliveryFee:         order.DeliveryFee,
		ServiceFee:          order.ServiceFee,
		Discount:            order.Discount,
		Total:               order.Total,
		PaymentMethod:       order.PaymentMethod,
		ActualPaymentMethod: order.ActualPaymentMethod,
		DeliveredAt:         order.DeliveredAt,
	}
}
