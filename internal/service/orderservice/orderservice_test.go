package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCreditProcessor) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	credits := NewMockCreditProcessor(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(repo, credits, txManager, Config{CardCommissionRate: 0.045, TaxRate: 0})
	defer ctrl.Finish()
	return service, repo, credits
}

func intPtr(v int) *int { return &v }

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{StatusPendingConfirmation, StatusConfirmed, true},
		{StatusPendingConfirmation, StatusRejected, true},
		{StatusPendingConfirmation, StatusCancelled, true},
		{StatusPendingConfirmation, StatusDelivered, false},
		{StatusConfirmed, StatusPreparing, true},
		{StatusConfirmed, StatusReady, false},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusAssignedRider, true},
		{StatusAssignedRider, StatusPickedUp, true},
		{StatusPickedUp, StatusInTransit, true},
		{StatusPickedUp, StatusCancelled, false},
		{StatusInTransit, StatusDelivered, true},
		{StatusInTransit, StatusCancelled, false},
		{StatusDelivered, StatusInTransit, false},
		{StatusRejected, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestGetOrder(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		orderID       int
		prepareMock   func()
		expectedOrder *domain.Order
		expectedError error
	}{
		{
			name:    "Retrieve order successfully",
			orderID: 101,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 101).Return(&domain.Order{
					ID:     101,
					Status: StatusInTransit,
				}, nil)
			},
			expectedOrder: &domain.Order{ID: 101, Status: StatusInTransit},
		},
		{
			name:    "Order not found",
			orderID: 999,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "Repository error",
			orderID: 101,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 101).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.GetOrder(context.Background(), tt.orderID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOrder, order)
			}
		})
	}
}

func TestHistory(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		orderID       int
		prepareMock   func()
		expectedLen   int
		expectedError error
	}{
		{
			name:    "Retrieve history successfully",
			orderID: 101,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 101).Return(&domain.Order{ID: 101}, nil)
				repo.EXPECT().History(gomock.Any(), 101).Return([]domain.StatusTransition{
					{OrderID: 101, FromStatus: StatusPendingConfirmation, ToStatus: StatusConfirmed},
					{OrderID: 101, FromStatus: StatusConfirmed, ToStatus: StatusPreparing},
				}, nil)
			},
			expectedLen: 2,
		},
		{
			name:    "Order not found",
			orderID: 999,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			history, err := service.History(context.Background(), tt.orderID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Len(t, history, tt.expectedLen)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name          string
		orderID       int
		target        string
		input         TransitionInput
		prepareMock   func(repo *MockRepo, credits *MockCreditProcessor)
		check         func(t *testing.T, order *domain.Order)
		expectedError error
	}{
		{
			name:    "Order not found",
			orderID: 999,
			target:  StatusConfirmed,
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 999).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "Illegal edge is rejected",
			orderID: 101,
			target:  StatusDelivered,
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:     101,
					Status: StatusConfirmed,
				}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:    "Reject requires a reason",
			orderID: 101,
			target:  StatusRejected,
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:     101,
					Status: StatusPendingConfirmation,
				}, nil)
			},
			expectedError: ErrValidation,
		},
		{
			name:    "Assigning a rider requires the rider id",
			orderID: 101,
			target:  StatusAssignedRider,
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:     101,
					Status: StatusReady,
				}, nil)
			},
			expectedError: ErrValidation,
		},
		{
			name:    "Assign rider successfully",
			orderID: 101,
			target:  StatusAssignedRider,
			input:   TransitionInput{RiderID: intPtr(42)},
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:     101,
					Status: StatusReady,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, StatusAssignedRider, order.Status)
				assert.Equal(t, 42, *order.RiderID)
			},
		},
		{
			name:    "Delivered without delivery proof",
			orderID: 101,
			target:  StatusDelivered,
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:            101,
					Status:        StatusInTransit,
					PaymentMethod: PayCash,
				}, nil)
			},
			expectedError: ErrMissingEvidence,
		},
		{
			name:    "Non-cash delivery without payment proof",
			orderID: 101,
			target:  StatusDelivered,
			input:   TransitionInput{DeliveryProofURL: "https://cdn/proof.jpg", ActualPaymentMethod: PayPOS},
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:            101,
					Status:        StatusInTransit,
					PaymentMethod: PayCash,
				}, nil)
			},
			expectedError: ErrMissingEvidence,
		},
		{
			name:    "Cash delivery posts credits",
			orderID: 101,
			target:  StatusDelivered,
			input:   TransitionInput{DeliveryProofURL: "https://cdn/proof.jpg"},
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:            101,
					Status:        StatusInTransit,
					Subtotal:      4500,
					DeliveryFee:   500,
					Total:         5000,
					PaymentMethod: PayCash,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
				credits.EXPECT().ProcessDelivery(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, StatusDelivered, order.Status)
				assert.Equal(t, PayCash, *order.ActualPaymentMethod)
				assert.NotNil(t, order.DeliveredAt)
				assert.Equal(t, int64(5000), order.Total)
			},
		},
		{
			name:    "Switch to POS at the door recomputes the surcharge",
			orderID: 101,
			target:  StatusDelivered,
			input: TransitionInput{
				DeliveryProofURL:    "https://cdn/proof.jpg",
				PaymentProofURL:     "https://cdn/voucher.jpg",
				ActualPaymentMethod: PayPOS,
			},
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:            101,
					Status:        StatusInTransit,
					Subtotal:      4500,
					DeliveryFee:   500,
					Total:         5000,
					PaymentMethod: PayCash,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
				credits.EXPECT().ProcessDelivery(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, PayPOS, *order.ActualPaymentMethod)
				assert.Equal(t, int64(230), order.ServiceFee)
				assert.Equal(t, int64(5230), order.Total)
			},
		},
		{
			name:    "Credit processing failure aborts the transition",
			orderID: 101,
			target:  StatusDelivered,
			input:   TransitionInput{DeliveryProofURL: "https://cdn/proof.jpg"},
			prepareMock: func(repo *MockRepo, credits *MockCreditProcessor) {
				repo.EXPECT().FindByIDForUpdate(gomock.Any(), 101).Return(&domain.Order{
					ID:            101,
					Status:        StatusInTransit,
					PaymentMethod: PayCash,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
				credits.EXPECT().ProcessDelivery(gomock.Any(), gomock.Any()).Return(errors.New("ledger unavailable"))
			},
			expectedError: errors.New("ledger unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, credits := NewMock(t)
			tt.prepareMock(repo, credits)

			order, err := service.Transition(context.Background(), tt.orderID, tt.target, 7, tt.input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, order)
				}
			}
		})
	}
}
