package credits

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
	"github.com/velozapp/veloz/internal/service/creditservice"
	"github.com/velozapp/veloz/pkg/auth"
)

func NewMock(t *testing.T) (*CreditHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withActor(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.ActorIDKey, 7))
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleAccount() *domain.CreditAccount {
	return &domain.CreditAccount{
		ID:              1,
		OwnerType:       "rider",
		OwnerID:         42,
		Balance:         6200,
		TotalEarned:     12000,
		TotalLiquidated: 5800,
	}
}

func TestRedeemHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful redemption",
			body: `{"code":"12345674","rider_id":42}`,
			prepareMock: func() {
				service.EXPECT().
					RedeemCode(gomock.Any(), "12345674", 42, 7).
					Return(sampleAccount(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"code":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Malformed code",
			body:          `{"code":"12345678","rider_id":42}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "malformed recharge code",
		},
		{
			name: "Code not found",
			body: `{"code":"12345674","rider_id":42}`,
			prepareMock: func() {
				service.EXPECT().
					RedeemCode(gomock.Any(), "12345674", 42, 7).
					Return(nil, creditservice.ErrCodeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Code already redeemed",
			body: `{"code":"12345674","rider_id":42}`,
			prepareMock: func() {
				service.EXPECT().
					RedeemCode(gomock.Any(), "12345674", 42, 7).
					Return(nil, creditservice.ErrCodeAlreadyRedeemed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"code":"12345674","rider_id":42}`,
			prepareMock: func() {
				service.EXPECT().
					RedeemCode(gomock.Any(), "12345674", 42, 7).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withActor(httptest.NewRequest(http.MethodPost, "/credits/redeem", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.Redeem(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(6200), body.Balance)
			}
		})
	}
}

func TestGenerateCodeHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful generation",
			body: `{"amount":5000}`,
			prepareMock: func() {
				service.EXPECT().
					GenerateCode(gomock.Any(), int64(5000), 7, nil).
					Return(&domain.RechargeCode{
						Code: "12345674", Amount: 5000, Status: "pending", CreatedAt: createdAt,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().
					GenerateCode(gomock.Any(), int64(0), 7, nil).
					Return(nil, creditservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withActor(httptest.NewRequest(http.MethodPost, "/credits/codes", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.GenerateCode(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.CodeResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "12345674", body.Code)
				assert.Equal(t, "pending", body.Status)
			}
		})
	}
}

func TestVoidCodeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful void",
			prepareMock: func() {
				service.EXPECT().
					VoidCode(gomock.Any(), "12345674", 7).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Code not found",
			prepareMock: func() {
				service.EXPECT().
					VoidCode(gomock.Any(), "12345674", 7).
					Return(creditservice.ErrCodeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Code already redeemed",
			prepareMock: func() {
				service.EXPECT().
					VoidCode(gomock.Any(), "12345674", 7).
					Return(creditservice.ErrCodeAlreadyRedeemed)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/credits/codes/12345674/void", nil)
			r = withActor(withURLParams(r, map[string]string{"code": "12345674"}))
			w := httptest.NewRecorder()

			handler.VoidCode(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdjustHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful adjustment",
			body: `{"entity_type":"rider","entity_id":42,"amount":-1500,"note":"correction for order VLZ-100"}`,
			prepareMock: func() {
				service.EXPECT().
					ManualAdjustment(gomock.Any(), "rider", 42, int64(-1500), "correction for order VLZ-100", 7).
					Return(sampleAccount(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Account not found",
			body: `{"entity_type":"rider","entity_id":99,"amount":-1500,"note":"correction for order VLZ-100"}`,
			prepareMock: func() {
				service.EXPECT().
					ManualAdjustment(gomock.Any(), "rider", 99, int64(-1500), "correction for order VLZ-100", 7).
					Return(nil, creditservice.ErrUnknownAccount)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Note too short",
			body: `{"entity_type":"rider","entity_id":42,"amount":-1500,"note":"fix"}`,
			prepareMock: func() {
				service.EXPECT().
					ManualAdjustment(gomock.Any(), "rider", 42, int64(-1500), "fix", 7).
					Return(nil, creditservice.ErrNoteTooShort)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withActor(httptest.NewRequest(http.MethodPost, "/credits/adjust", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.Adjust(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), "rider", 42).
					Return(sampleAccount(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Account not found",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), "rider", 42).
					Return(nil, creditservice.ErrUnknownAccount)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/credits/rider/42", nil)
			r = withURLParams(r, map[string]string{"type": "rider", "id": "42"})
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "rider", body.OwnerType)
				assert.Equal(t, int64(6200), body.Balance)
			}
		})
	}
}

func TestListTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Successful retrieval", func(t *testing.T) {
		service.EXPECT().
			ListTransactions(gomock.Any(), "rider", 42, 10, 0).
			Return([]domain.CreditTransaction{
				{ID: 34, Type: "order_credit", Amount: 4250, BalanceAfter: 3500, CreatedAt: createdAt},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/credits/rider/42/transactions?limit=10", nil)
		r = withURLParams(r, map[string]string{"type": "rider", "id": "42"})
		w := httptest.NewRecorder()

		handler.ListTransactions(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.TransactionResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, "order_credit", body[0].Type)
	})

	t.Run("Account not found", func(t *testing.T) {
		service.EXPECT().
			ListTransactions(gomock.Any(), "rider", 42, 0, 0).
			Return(nil, creditservice.ErrUnknownAccount)

		r := httptest.NewRequest(http.MethodGet, "/credits/rider/42/transactions", nil)
		r = withURLParams(r, map[string]string{"type": "rider", "id": "42"})
		w := httptest.NewRecorder()

		handler.ListTransactions(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
