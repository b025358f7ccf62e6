package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"github.com/velozapp/veloz/pkg/money"
	"go.uber.org/zap"
)

const (
	EntityRider      = "rider"
	EntityRestaurant = "restaurant"
)

const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusDisputed = "disputed"
)

const (
	payCash    = "cash"
	payCard    = "card"
	payPOS     = "pos"
	payDigital = "digital"
)

const (
	payTypeCommission  = "commission"
	payTypeFixedSalary = "fixed_salary"
)

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrOverlappingPeriod  = errors.New("overlapping settlement period")
	ErrUnknownEntity      = errors.New("unknown settlement entity")
	ErrValidation         = errors.New("invalid settlement input")
)

type OrderRepo interface {
	FindDeliveredForEntity(ctx context.Context, entityType string, entityID int, from, to time.Time) ([]domain.Order, error)
}

type Repo interface {
	FindOverlapping(ctx context.Context, entityType string, entityID int, start, end time.Time) (*domain.Settlement, error)
	Insert(ctx context.Context, settlement *domain.Settlement) error
	FindByID(ctx context.Context, id int) (*domain.Settlement, error)
	Update(ctx context.Context, settlement *domain.Settlement) error
	List(ctx context.Context, filter ListFilter) ([]domain.Settlement, error)
}

type PartyRepo interface {
	GetRider(ctx context.Context, id int) (*domain.Rider, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
}

type ListFilter struct {
	EntityType string
	EntityID   int
	Status     string
	Month      string // "2026-08"
	Limit      int
	Offset     int
}

type Input struct {
	EntityType  string
	EntityID    int
	PeriodStart time.Time
	PeriodEnd   time.Time
	Bonuses     int64
	Fuel        int64
	Notes       string
}

type Service struct {
	orders    OrderRepo
	repo      Repo
	parties   PartyRepo
	txManager pg.TXManager
}

func New(orders OrderRepo, repo Repo, parties PartyRepo, txManager pg.TXManager) *Service {
	return &Service{
		orders:    orders,
		repo:      repo,
		parties:   parties,
		txManager: txManager,
	}
}

func (in Input) validate() error {
	if in.EntityType != EntityRider && in.EntityType != EntityRestaurant {
		return ErrValidation
	}
	if in.PeriodEnd.Before(in.PeriodStart) {
		return ErrValidation
	}
	if in.Bonuses < 0 || in.Fuel < 0 {
		return ErrValidation
	}
	return nil
}

// Preview computes the payout without persisting anything.
func (s *Service) Preview(ctx context.Context, in Input) (*domain.Settlement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	settlement, err := s.compute(ctx, in)
	if err != nil {
		zap.L().Error("failed to compute settlement preview", zap.Error(err))
		return nil, err
	}
	return settlement, nil
}

// Create computes and persists a pending settlement. The overlap guard runs
// inside the serializable transaction, so two racing creates for the same
// entity cannot both commit.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Settlement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var settlement *domain.Settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindOverlapping(ctx, in.EntityType, in.EntityID, in.PeriodStart, in.PeriodEnd)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: conflicts with %s..%s",
				ErrOverlappingPeriod,
				existing.PeriodStart.Format("2006-01-02"),
				existing.PeriodEnd.Format("2006-01-02"))
		}

		settlement, err = s.compute(ctx, in)
		if err != nil {
			return err
		}
		if err := s.repo.Insert(ctx, settlement); err != nil {
			zap.L().Error("failed to insert settlement", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settlement, nil
}

func (s *Service) compute(ctx context.Context, in Input) (*domain.Settlement, error) {
	orders, err := s.orders.FindDeliveredForEntity(ctx, in.EntityType, in.EntityID, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}

	settlement := &domain.Settlement{
		EntityType:        in.EntityType,
		EntityID:          in.EntityID,
		PeriodStart:       in.PeriodStart,
		PeriodEnd:         in.PeriodEnd,
		OrdersCount:       len(orders),
		Bonuses:           in.Bonuses,
		FuelReimbursement: money.RoundUpTo(in.Fuel, 10),
		Status:            StatusPending,
		Notes:             in.Notes,
		CreatedAt:         time.Now(),
	}

	if in.EntityType == EntityRestaurant {
		return s.computeRestaurant(ctx, settlement, orders)
	}
	return s.computeRider(ctx, settlement, orders)
}

func (s *Service) computeRestaurant(ctx context.Context, settlement *domain.Settlement, orders []domain.Order) (*domain.Settlement, error) {
	restaurant, err := s.parties.GetRestaurant(ctx, settlement.EntityID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrUnknownEntity
	}

	for _, order := range orders {
		settlement.GrossSales += order.Subtotal
	}
	settlement.Commission = money.RoundUpRate(settlement.GrossSales, restaurant.CommissionRate)
	settlement.NetPayout = settlement.GrossSales - settlement.Commission
	if settlement.NetPayout < 0 {
		settlement.NetPayout = 0
	}
	return settlement, nil
}

func (s *Service) computeRider(ctx context.Context, settlement *domain.Settlement, orders []domain.Order) (*domain.Settlement, error) {
	rider, err := s.parties.GetRider(ctx, settlement.EntityID)
	if err != nil {
		return nil, err
	}
	if rider == nil {
		return nil, ErrUnknownEntity
	}

	for _, order := range orders {
		settlement.DeliveryFees += order.DeliveryFee
		switch order.CollectedMethod() {
		case payCash:
			settlement.CashCollected += order.Total
		case payPOS, payCard:
			settlement.POSCollected += order.Total
		case payDigital:
			settlement.DigitalCollected += order.Total
		}
		if rider.PayType == payTypeCommission {
			// Same per-order floor the delivery credit processor applies,
			// so the settlement agrees with the ledger.
			settlement.Commission += money.FloorRate(order.DeliveryFee, rider.CommissionRate)
		}
	}
	if rider.PayType == payTypeFixedSalary {
		settlement.Commission = rider.FixedSalary
	}

	settlement.NetPayout = settlement.Commission + settlement.Bonuses + settlement.FuelReimbursement
	if settlement.NetPayout < 0 {
		settlement.NetPayout = 0
	}
	return settlement, nil
}

// UpdateStatus moves a settlement between pending, disputed and paid, and
// recomputes the payout when the fuel reimbursement is adjusted.
func (s *Service) UpdateStatus(ctx context.Context, id int, newStatus string, fuelAdjustment *int64) (*domain.Settlement, error) {
	if newStatus != StatusPending && newStatus != StatusPaid && newStatus != StatusDisputed {
		return nil, ErrValidation
	}

	var settlement *domain.Settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		settlement, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if settlement == nil {
			return ErrSettlementNotFound
		}

		if fuelAdjustment != nil {
			if settlement.EntityType != EntityRider || *fuelAdjustment < 0 {
				return ErrValidation
			}
			settlement.FuelReimbursement = money.RoundUpTo(*fuelAdjustment, 10)
			settlement.NetPayout = settlement.Commission + settlement.Bonuses + settlement.FuelReimbursement
			if settlement.NetPayout < 0 {
				settlement.NetPayout = 0
			}
		}

		settlement.Status = newStatus
		if newStatus == StatusPaid {
			now := time.Now()
			settlement.PaidAt = &now
		} else {
			settlement.PaidAt = nil
		}

		if err := s.repo.Update(ctx, settlement); err != nil {
			zap.L().Error("failed to update settlement", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settlement, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.Settlement, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	settlements, err := s.repo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list settlements", zap.Error(err))
		return nil, err
	}
	return settlements, nil
}
