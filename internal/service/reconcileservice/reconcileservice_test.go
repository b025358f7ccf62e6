package reconcileservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
)

const tolerance = 500

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockRepo) {
	ctrl := gomock.NewController(t)
	orderRepo := NewMockOrderRepo(ctrl)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(orderRepo, repo, txManager, tolerance)
	defer ctrl.Finish()
	return service, orderRepo, repo
}

func strPtr(v string) *string { return &v }

var reportDate = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func TestComputeExpected(t *testing.T) {
	service, orderRepo, _ := NewMock(t)

	orderRepo.EXPECT().FindDeliveredForRiderOn(gomock.Any(), 42, reportDate).Return([]domain.Order{
		{Total: 5000, PaymentMethod: "cash"},
		{Total: 4400, PaymentMethod: "cash"},
		{Total: 3000, PaymentMethod: "pos"},
		{Total: 1000, PaymentMethod: "card"},
		{Total: 1500, PaymentMethod: "digital"},
		{Total: 2000, PaymentMethod: "online"},
		{Total: 600, PaymentMethod: "online", ActualPaymentMethod: strPtr("cash")},
	}, nil)

	expected, deliveries, err := service.ComputeExpected(context.Background(), 42, reportDate)
	assert.NoError(t, err)
	assert.Equal(t, 7, deliveries)
	assert.Equal(t, int64(10000), expected.Cash)
	assert.Equal(t, int64(4000), expected.POS)
	assert.Equal(t, int64(1500), expected.Digital)
}

func TestSubmitReport(t *testing.T) {
	t.Run("Negative declared amounts", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, err := service.SubmitReport(context.Background(), 42, reportDate, Declared{Cash: -1})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("One report per rider per day", func(t *testing.T) {
		service, _, repo := NewMock(t)
		repo.EXPECT().FindByRiderAndDate(gomock.Any(), 42, reportDate).Return(&domain.DailyCashReport{ID: 55}, nil)

		_, err := service.SubmitReport(context.Background(), 42, reportDate, Declared{Cash: 10000})
		assert.ErrorIs(t, err, ErrReportExists)
	})

	t.Run("Short cash beyond tolerance is flagged", func(t *testing.T) {
		service, orderRepo, repo := NewMock(t)
		repo.EXPECT().FindByRiderAndDate(gomock.Any(), 42, reportDate).Return(nil, nil)
		orderRepo.EXPECT().FindDeliveredForRiderOn(gomock.Any(), 42, reportDate).Return([]domain.Order{
			{Total: 10000, PaymentMethod: "cash"},
		}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		report, err := service.SubmitReport(context.Background(), 42, reportDate, Declared{Cash: 9400})
		assert.NoError(t, err)
		assert.Equal(t, int64(-600), report.Discrepancy)
		assert.True(t, report.Flagged)
		assert.Equal(t, StatusSubmitted, report.Status)
	})

	t.Run("Discrepancy within tolerance is not flagged", func(t *testing.T) {
		service, orderRepo, repo := NewMock(t)
		repo.EXPECT().FindByRiderAndDate(gomock.Any(), 42, reportDate).Return(nil, nil)
		orderRepo.EXPECT().FindDeliveredForRiderOn(gomock.Any(), 42, reportDate).Return([]domain.Order{
			{Total: 10000, PaymentMethod: "cash"},
		}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		report, err := service.SubmitReport(context.Background(), 42, reportDate, Declared{Cash: 9500})
		assert.NoError(t, err)
		assert.Equal(t, int64(-500), report.Discrepancy)
		assert.False(t, report.Flagged)
	})

	t.Run("Overage is also a discrepancy", func(t *testing.T) {
		service, orderRepo, repo := NewMock(t)
		repo.EXPECT().FindByRiderAndDate(gomock.Any(), 42, reportDate).Return(nil, nil)
		orderRepo.EXPECT().FindDeliveredForRiderOn(gomock.Any(), 42, reportDate).Return([]domain.Order{
			{Total: 10000, PaymentMethod: "cash"},
		}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		report, err := service.SubmitReport(context.Background(), 42, reportDate, Declared{Cash: 11000})
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), report.Discrepancy)
		assert.True(t, report.Flagged)
	})
}

func TestReview(t *testing.T) {
	t.Run("Reject requires a note", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, err := service.Review(context.Background(), 55, false, "", 7)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Report not found", func(t *testing.T) {
		service, _, repo := NewMock(t)
		repo.EXPECT().FindByID(gomock.Any(), 55).Return(nil, nil)

		_, err := service.Review(context.Background(), 55, true, "", 7)
		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("Only submitted reports can be reviewed", func(t *testing.T) {
		service, _, repo := NewMock(t)
		repo.EXPECT().FindByID(gomock.Any(), 55).Return(&domain.DailyCashReport{
			ID: 55, Status: StatusApproved,
		}, nil)

		_, err := service.Review(context.Background(), 55, true, "", 7)
		assert.ErrorIs(t, err, ErrInvalidReportState)
	})

	t.Run("Approve successfully", func(t *testing.T) {
		service, _, repo := NewMock(t)
		repo.EXPECT().FindByID(gomock.Any(), 55).Return(&domain.DailyCashReport{
			ID: 55, Status: StatusSubmitted,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		report, err := service.Review(context.Background(), 55, true, "", 7)
		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, report.Status)
		assert.Equal(t, 7, *report.ReviewedBy)
	})

	t.Run("Reject records the note", func(t *testing.T) {
		service, _, repo := NewMock(t)
		repo.EXPECT().FindByID(gomock.Any(), 55).Return(&domain.DailyCashReport{
			ID: 55, Status: StatusSubmitted,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		report, err := service.Review(context.Background(), 55, false, "short 600, rider notified", 7)
		assert.NoError(t, err)
		assert.Equal(t, StatusRejected, report.Status)
		assert.Equal(t, "short 600, rider notified", report.Note)
	})
}

func TestDailyOverview(t *testing.T) {
	t.Run("Aggregates all riders sorted by id", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		orderRepo.EXPECT().RidersWithDeliveriesOn(gomock.Any(), reportDate).Return([]int{42, 17, 88}, nil)
		orderRepo.EXPECT().FindDeliveredForRiderOn(gomock.Any(), 17, reportDate).Return([]domain.Order{
			{Total: 3000, PaymentMethod: "cash"},
		}, nil)
		orderRepo.EXPECT().FindDeliveredForRiderOn(gomock.Any(), 42, reportDate).Return([]domain.Order{
			{Total: 5000, PaymentMethod: "cash"},
			{Total: 4000, PaymentMethod: "pos"},
		}, nil)
		orderRepo.EXPECT().FindDeliveredForRiderOn(gomock.Any(), 88, reportDate).Return(nil, nil)

		overview, err := service.DailyOverview(context.Background(), reportDate)
		assert.NoError(t, err)
		assert.Len(t, overview, 3)
		assert.Equal(t, []int{17, 42, 88}, []int{overview[0].RiderID, overview[1].RiderID, overview[2].RiderID})
		assert.Equal(t, int64(5000), overview[1].Expected.Cash)
		assert.Equal(t, int64(4000), overview[1].Expected.POS)
		assert.Equal(t, 2, overview[1].Deliveries)
	})

	t.Run("One failing rider fails the overview", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		orderRepo.EXPECT().RidersWithDeliveriesOn(gomock.Any(), reportDate).Return([]int{42}, nil)
		orderRepo.EXPECT().FindDeliveredForRiderOn(gomock.Any(), 42, reportDate).Return(nil, errors.New("db error"))

		_, err := service.DailyOverview(context.Background(), reportDate)
		assert.Error(t, err)
	})
}
