package reports

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
	"github.com/velozapp/veloz/internal/service/reconcileservice"
	"github.com/velozapp/veloz/pkg/auth"
	"github.com/velozapp/veloz/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	SubmitReport(ctx context.Context, riderID int, date time.Time, declared reconcileservice.Declared) (*domain.DailyCashReport, error)
	Review(ctx context.Context, reportID int, approve bool, note string, actorID int) (*domain.DailyCashReport, error)
	DailyOverview(ctx context.Context, date time.Time) ([]reconcileservice.RiderExpected, error)
}

type ReportHandler struct {
	reconcileService Service
}

func New(reconcileService Service) *ReportHandler {
	return &ReportHandler{
		reconcileService: reconcileService,
	}
}

// Submit godoc
//
//	@Summary		Submit a daily cash report
//	@Description	Record the amounts a rider declares for a day. Expected amounts are computed from delivered orders and the cash discrepancy is flagged when it exceeds the configured tolerance.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitReportRequestDTO	true	"Declared amounts"
//	@Success		201		{object}	dto.ReportResponseDTO		"Submitted report"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		409		{object}	utils.Response				"Report already submitted for this day"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/reports [post]
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	riderID := r.Context().Value(auth.ActorIDKey).(int)

	var req dto.SubmitReportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid date")
		return
	}

	report, err := h.reconcileService.SubmitReport(r.Context(), riderID, date, reconcileservice.Declared{
		Cash:    req.DeclaredCash,
		POS:     req.DeclaredPOS,
		Digital: req.DeclaredDigital,
	})
	if err != nil {
		switch {
		case errors.Is(err, reconcileservice.ErrReportExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, reconcileservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toReportDTO(report))
}

// Review godoc
//
//	@Summary		Review a submitted report
//	@Description	Approve or reject a submitted daily cash report. Rejection requires a note.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Report ID"
//	@Param			request	body		dto.ReviewReportRequestDTO	true	"Review decision"
//	@Success		200		{object}	dto.ReportResponseDTO		"Reviewed report"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		403		{object}	utils.Response				"Forbidden"
//	@Failure		404		{object}	utils.Response				"Report not found"
//	@Failure		409		{object}	utils.Response				"Report is not awaiting review"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/reports/{id} [patch]
func (h *ReportHandler) Review(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.ActorIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	var req dto.ReviewReportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != reconcileservice.StatusApproved && req.Status != reconcileservice.StatusRejected {
		utils.RespondWithError(w, http.StatusBadRequest, "status must be approved or rejected")
		return
	}

	report, err := h.reconcileService.Review(r.Context(), id, req.Status == reconcileservice.StatusApproved, req.Note, actorID)
	if err != nil {
		switch {
		case errors.Is(err, reconcileservice.ErrReportNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reconcileservice.ErrInvalidReportState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, reconcileservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toReportDTO(report))
}

// Overview godoc
//
//	@Summary		Get the expected-cash overview for a day
//	@Description	Compute expected amounts per rider for every rider with deliveries on the given day.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string					true	"Day, e.g. 2026-08-30"
//	@Success		200		{array}		dto.RiderExpectedDTO	"Per-rider expected amounts"
//	@Failure		400		{object}	utils.Response			"Invalid date"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/reports/overview [get]
func (h *ReportHandler) Overview(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid date")
		return
	}

	rows, err := h.reconcileService.DailyOverview(r.Context(), date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RiderExpectedDTO, len(rows))
	for i, row := range rows {
		response[i] = dto.RiderExpectedDTO{
			RiderID:         row.RiderID,
			Deliveries:      row.Deliveries,
			ExpectedCash:    row.Expected.Cash,
			ExpectedPOS:     row.Expected.POS,
			ExpectedDigital: row.Expected.Digital,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toReportDTO(report *domain.DailyCashReport) dto.ReportResponseDTO {
	return dto.ReportResponseDTO{
		ID:              report.ID,
		RiderID:         report.RiderID,
		Date:            report.ReportDate.Format(dateLayout),
		DeclaredCash:    report.DeclaredCash,
		DeclaredPOS:     report.DeclaredPOS,
		DeclaredDigital: report.DeclaredDigital,
		ExpectedCash:    report.ExpectedCash,
		ExpectedPOS:     report.ExpectedPOS,
		ExpectedDigital: report.ExpectedDigital,
		Discrepancy:     report.Discrepancy,
		Flagged:         report.Flagged,
		Status:          report.Status,
		Note:            report.Note,
	}
}
