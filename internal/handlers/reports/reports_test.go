package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/dto"
	"github.com/velozapp/veloz/internal/service/reconcileservice"
	"github.com/velozapp/veloz/pkg/auth"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var reportDate = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func sampleReport() *domain.DailyCashReport {
	return &domain.DailyCashReport{
		ID:           55,
		RiderID:      42,
		ReportDate:   reportDate,
		DeclaredCash: 9400,
		ExpectedCash: 10000,
		Discrepancy:  -600,
		Flagged:      true,
		Status:       "submitted",
	}
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful submission",
			body: `{"date":"2026-08-30","declared_cash":9400,"declared_pos":4000,"declared_digital":1500}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitReport(gomock.Any(), 42, reportDate, reconcileservice.Declared{
						Cash: 9400, POS: 4000, Digital: 1500,
					}).
					Return(sampleReport(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"date":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Invalid date",
			body:          `{"date":"yesterday","declared_cash":9400}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid date",
		},
		{
			name: "Report already submitted",
			body: `{"date":"2026-08-30","declared_cash":9400}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitReport(gomock.Any(), 42, reportDate, reconcileservice.Declared{Cash: 9400}).
					Return(nil, reconcileservice.ErrReportExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"date":"2026-08-30","declared_cash":9400}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitReport(gomock.Any(), 42, reportDate, reconcileservice.Declared{Cash: 9400}).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.ActorIDKey, 42))
			w := httptest.NewRecorder()

			handler.Submit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.ReportResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 55, body.ID)
				assert.Equal(t, int64(-600), body.Discrepancy)
				assert.True(t, body.Flagged)
			}
		})
	}
}

func TestReviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		reportID      string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Successful approval",
			reportID: "55",
			body:     `{"status":"approved"}`,
			prepareMock: func() {
				approved := sampleReport()
				approved.Status = "approved"
				service.EXPECT().
					Review(gomock.Any(), 55, true, "", 7).
					Return(approved, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Rejection passes the note through",
			reportID: "55",
			body:     `{"status":"rejected","note":"short 600, rider notified"}`,
			prepareMock: func() {
				rejected := sampleReport()
				rejected.Status = "rejected"
				rejected.Note = "short 600, rider notified"
				service.EXPECT().
					Review(gomock.Any(), 55, false, "short 600, rider notified", 7).
					Return(rejected, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid report id",
			reportID:      "abc",
			body:          `{"status":"approved"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid report id",
		},
		{
			name:          "Unknown review status",
			reportID:      "55",
			body:          `{"status":"archived"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "status must be approved or rejected",
		},
		{
			name:     "Report not found",
			reportID: "55",
			body:     `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					Review(gomock.Any(), 55, true, "", 7).
					Return(nil, reconcileservice.ErrReportNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Report is not awaiting review",
			reportID: "55",
			body:     `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					Review(gomock.Any(), 55, true, "", 7).
					Return(nil, reconcileservice.ErrInvalidReportState)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPatch, "/reports/"+tt.reportID, bytes.NewBufferString(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.reportID)
			ctx := context.WithValue(r.Context(), auth.ActorIDKey, 7)
			r = r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.Review(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestOverviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful retrieval", func(t *testing.T) {
		service.EXPECT().
			DailyOverview(gomock.Any(), reportDate).
			Return([]reconcileservice.RiderExpected{
				{RiderID: 17, Deliveries: 1, Expected: reconcileservice.Expected{Cash: 3000}},
				{RiderID: 42, Deliveries: 2, Expected: reconcileservice.Expected{Cash: 5000, POS: 4000}},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/reports/overview?date=2026-08-30", nil)
		w := httptest.NewRecorder()

		handler.Overview(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.RiderExpectedDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
		assert.Equal(t, 42, body[1].RiderID)
		assert.Equal(t, int64(4000), body[1].ExpectedPOS)
	})

	t.Run("Invalid date", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/reports/overview?date=today", nil)
		w := httptest.NewRecorder()

		handler.Overview(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().
			DailyOverview(gomock.Any(), reportDate).
			Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/reports/overview?date=2026-08-30", nil)
		w := httptest.NewRecorder()

		handler.Overview(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
