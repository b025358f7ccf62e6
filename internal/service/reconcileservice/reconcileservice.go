package reconcileservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

const overviewWorkers = 8

var (
	ErrReportNotFound     = errors.New("cash report not found")
	ErrReportExists       = errors.New("cash report already submitted for this day")
	ErrInvalidReportState = errors.New("report is not awaiting review")
	ErrValidation         = errors.New("invalid report input")
)

type OrderRepo interface {
	FindDeliveredForRiderOn(ctx context.Context, riderID int, date time.Time) ([]domain.Order, error)
	RidersWithDeliveriesOn(ctx context.Context, date time.Time) ([]int, error)
}

type Repo interface {
	FindByRiderAndDate(ctx context.Context, riderID int, date time.Time) (*domain.DailyCashReport, error)
	Insert(ctx context.Context, report *domain.DailyCashReport) error
	FindByID(ctx context.Context, id int) (*domain.DailyCashReport, error)
	Update(ctx context.Context, report *domain.DailyCashReport) error
}

type Expected struct {
	Cash    int64
	POS     int64
	Digital int64
}

type Declared struct {
	Cash    int64
	POS     int64
	Digital int64
}

type RiderExpected struct {
	RiderID    int
	Deliveries int
	Expected   Expected
}

type Service struct {
	orders    OrderRepo
	repo      Repo
	txManager pg.TXManager
	tolerance int64
}

func New(orders OrderRepo, repo Repo, txManager pg.TXManager, tolerance int64) *Service {
	return &Service{
		orders:    orders,
		repo:      repo,
		txManager: txManager,
		tolerance: tolerance,
	}
}

// ComputeExpected buckets the rider's delivered orders for the day by the
// method the money actually moved through.
func (s *Service) ComputeExpected(ctx context.Context, riderID int, date time.Time) (Expected, int, error) {
	orders, err := s.orders.FindDeliveredForRiderOn(ctx, riderID, date)
	if err != nil {
		zap.L().Error("failed to load delivered orders", zap.Error(err))
		return Expected{}, 0, err
	}

	var expected Expected
	for _, order := range orders {
		switch order.CollectedMethod() {
		case "cash":
			expected.Cash += order.Total
		case "pos", "card":
			expected.POS += order.Total
		case "digital":
			expected.Digital += order.Total
		}
	}
	return expected, len(orders), nil
}

// SubmitReport records the rider's declared end-of-day totals against the
// computed expectation. One report per rider per calendar day.
func (s *Service) SubmitReport(ctx context.Context, riderID int, date time.Time, declared Declared) (*domain.DailyCashReport, error) {
	if declared.Cash < 0 || declared.POS < 0 || declared.Digital < 0 {
		return nil, ErrValidation
	}

	var report *domain.DailyCashReport
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByRiderAndDate(ctx, riderID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrReportExists
		}

		expected, _, err := s.ComputeExpected(ctx, riderID, date)
		if err != nil {
			return err
		}

		discrepancy := declared.Cash - expected.Cash
		report = &domain.DailyCashReport{
			RiderID:         riderID,
			ReportDate:      date,
			DeclaredCash:    declared.Cash,
			DeclaredPOS:     declared.POS,
			DeclaredDigital: declared.Digital,
			ExpectedCash:    expected.Cash,
			ExpectedPOS:     expected.POS,
			ExpectedDigital: expected.Digital,
			Discrepancy:     discrepancy,
			Flagged:         abs(discrepancy) > s.tolerance,
			Status:          StatusSubmitted,
			CreatedAt:       time.Now(),
		}
		if err := s.repo.Insert(ctx, report); err != nil {
			zap.L().Error("failed to insert cash report", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Review approves or rejects a submitted report. Rejection requires a note.
func (s *Service) Review(ctx context.Context, reportID int, approve bool, note string, actorID int) (*domain.DailyCashReport, error) {
	if !approve && note == "" {
		return nil, ErrValidation
	}

	var report *domain.DailyCashReport
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.repo.FindByID(ctx, reportID)
		if err != nil {
			return err
		}
		if report == nil {
			return ErrReportNotFound
		}
		if report.Status != StatusSubmitted {
			return ErrInvalidReportState
		}

		if approve {
			report.Status = StatusApproved
		} else {
			report.Status = StatusRejected
		}
		if note != "" {
			report.Note = note
		}
		report.ReviewedBy = &actorID

		if err := s.repo.Update(ctx, report); err != nil {
			zap.L().Error("failed to update cash report", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// DailyOverview computes expected collections for every rider with
// deliveries on the date, fanning out per rider.
func (s *Service) DailyOverview(ctx context.Context, date time.Time) ([]RiderExpected, error) {
	riderIDs, err := s.orders.RidersWithDeliveriesOn(ctx, date)
	if err != nil {
		zap.L().Error("failed to list riders with deliveries", zap.Error(err))
		return nil, err
	}

	var mu sync.Mutex
	overview := make([]RiderExpected, 0, len(riderIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewWorkers)
	for _, riderID := range riderIDs {
		riderID := riderID
		g.Go(func() error {
			expected, deliveries, err := s.ComputeExpected(ctx, riderID, date)
			if err != nil {
				return err
			}
			mu.Lock()
			overview = append(overview, RiderExpected{
				RiderID:    riderID,
				Deliveries: deliveries,
				Expected:   expected,
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(overview, func(i, j int) bool { return overview[i].RiderID < overview[j].RiderID })
	return overview, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
