package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"github.com/velozapp/veloz/pkg/money"
	"go.uber.org/zap"
)

const (
	StatusPendingConfirmation = "pending_confirmation"
	StatusConfirmed           = "confirmed"
	StatusPreparing           = "preparing"
	StatusReady               = "ready"
	StatusAssignedRider       = "assigned_rider"
	StatusPickedUp            = "picked_up"
	StatusInTransit           = "in_transit"
	StatusDelivered           = "delivered"
	StatusRejected            = "rejected"
	StatusCancelled           = "cancelled"
)

const (
	PayCash    = "cash"
	PayCard    = "card"
	PayPOS     = "pos"
	PayDigital = "digital"
	PayOnline  = "online"
)

// transitions is the full set of legal status edges. Terminal statuses have
// no entry.
var transitions = map[string][]string{
	StatusPendingConfirmation: {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed:           {StatusPreparing, StatusCancelled},
	StatusPreparing:           {StatusReady, StatusCancelled},
	StatusReady:               {StatusAssignedRider, StatusCancelled},
	StatusAssignedRider:       {StatusPickedUp, StatusCancelled},
	StatusPickedUp:            {StatusInTransit},
	StatusInTransit:           {StatusDelivered},
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingEvidence   = errors.New("missing delivery evidence")
	ErrValidation        = errors.New("invalid transition input")
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	AppendHistory(ctx context.Context, transition *domain.StatusTransition) error
	History(ctx context.Context, orderID int) ([]domain.StatusTransition, error)
}

// CreditProcessor posts the ledger effects of a delivered order. It runs
// inside the transition's transaction; an error aborts the whole transition.
type CreditProcessor interface {
	ProcessDelivery(ctx context.Context, order *domain.Order) error
}

type Config struct {
	CardCommissionRate float64
	TaxRate            float64
}

type TransitionInput struct {
	RiderID             *int
	Notes               string
	RejectReason        string
	ActualPaymentMethod string
	DeliveryProofURL    string
	PaymentProofURL     string
}

type Service struct {
	repo      Repo
	credits   CreditProcessor
	txManager pg.TXManager
	cfg       Config
}

func New(repo Repo, credits CreditProcessor, txManager pg.TXManager, cfg Config) *Service {
	return &Service{
		repo:      repo,
		credits:   credits,
		txManager: txManager,
		cfg:       cfg,
	}
}

// CanTransition reports whether an order may move from one status to the other.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *Service) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get order", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) History(ctx context.Context, orderID int) ([]domain.StatusTransition, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	history, err := s.repo.History(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get order history", zap.Error(err))
		return nil, err
	}
	return history, nil
}

// Transition moves the order to target if the edge is legal, appends the
// history record and, for delivered, runs the credit processor in the same
// transaction. The status write and the ledger postings commit together or
// not at all.
func (s *Service) Transition(ctx context.Context, orderID int, target string, actorID int, in TransitionInput) (*domain.Order, error) {
	var result *domain.Order

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.repo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			zap.L().Error("failed to lock order", zap.Error(err))
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !CanTransition(order.Status, target) {
			return ErrInvalidTransition
		}

		from := order.Status
		now := time.Now()

		switch target {
		case StatusRejected:
			if in.RejectReason == "" {
				return ErrValidation
			}
			order.RejectReason = &in.RejectReason
		case StatusCancelled:
			order.CancelledAt = &now
		case StatusAssignedRider:
			if in.RiderID == nil {
				return ErrValidation
			}
			order.RiderID = in.RiderID
		case StatusDelivered:
			if err := s.applyDelivery(order, in, now); err != nil {
				return err
			}
		}

		order.Status = target
		if err := s.repo.Update(ctx, order); err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}

		transition := &domain.StatusTransition{
			OrderID:    order.ID,
			FromStatus: from,
			ToStatus:   target,
			ActorID:    actorID,
			Notes:      in.Notes,
			CreatedAt:  now,
		}
		if err := s.repo.AppendHistory(ctx, transition); err != nil {
			zap.L().Error("failed to append order history", zap.Error(err))
			return err
		}

		if target == StatusDelivered {
			if err := s.credits.ProcessDelivery(ctx, order); err != nil {
				zap.L().Error("delivery credit processing failed, aborting transition",
					zap.Int("order_id", order.ID), zap.Error(err))
				return err
			}
		}

		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyDelivery validates delivery evidence and, when the observed payment
// method differs from the declared one, recomputes the service fee and total
// before the ledger sees the order.
func (s *Service) applyDelivery(order *domain.Order, in TransitionInput, now time.Time) error {
	if in.DeliveryProofURL == "" {
		return ErrMissingEvidence
	}

	actual := in.ActualPaymentMethod
	if actual == "" {
		actual = order.PaymentMethod
	}
	if actual != PayCash && in.PaymentProofURL == "" {
		return ErrMissingEvidence
	}

	if actual != order.PaymentMethod {
		serviceFee := int64(0)
		if actual == PayCard || actual == PayPOS {
			serviceFee = money.Surcharge(order.Subtotal+order.DeliveryFee, s.cfg.CardCommissionRate, s.cfg.TaxRate)
		}
		order.ServiceFee = serviceFee
		order.Total = money.RoundUpTo(order.Subtotal+order.DeliveryFee+order.ServiceFee-order.Discount, 10)
	}

	order.ActualPaymentMethod = &actual
	order.DeliveryProofURL = &in.DeliveryProofURL
	if in.PaymentProofURL != "" {
		order.PaymentProofURL = &in.PaymentProofURL
	}
	order.DeliveredAt = &now
	return nil
}
