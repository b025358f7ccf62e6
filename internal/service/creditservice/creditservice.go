package creditservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/velozapp/veloz/internal/domain"
	"github.com/velozapp/veloz/internal/pg"
	"github.com/velozapp/veloz/pkg/codes"
	"github.com/velozapp/veloz/pkg/money"
	"go.uber.org/zap"
)

const (
	TxOrderFoodDebit       = "order_food_debit"
	TxOrderCommissionDebit = "order_commission_debit"
	TxOrderDeliveryCredit  = "order_delivery_credit"
	TxOrderCredit          = "order_credit"
	TxRecharge             = "recharge"
	TxAdjustment           = "adjustment"
	TxLiquidation          = "liquidation"
	TxVoidedRecharge       = "voided_recharge"
)

const (
	OwnerRider      = "rider"
	OwnerRestaurant = "restaurant"
)

const (
	PayTypeCommission  = "commission"
	PayTypeFixedSalary = "fixed_salary"

	ModePerItem = "per_item"
)

const (
	CodePending  = "pending"
	CodeRedeemed = "redeemed"
	CodeVoided   = "voided"
)

// Methods the rider physically collects on behalf of the restaurant. Online
// payments are captured in-app and never pass through the rider's hands.
var riderCollected = map[string]bool{
	"cash":    true,
	"pos":     true,
	"card":    true,
	"digital": true,
}

const minAdjustmentNote = 10

var (
	ErrUnknownAccount      = errors.New("unknown credit account")
	ErrUnknownParty        = errors.New("unknown rider or restaurant")
	ErrCodeNotFound        = errors.New("recharge code not found")
	ErrCodeAlreadyRedeemed = errors.New("recharge code already redeemed")
	ErrCodeVoided          = errors.New("recharge code voided")
	ErrNoteTooShort        = errors.New("adjustment note too short")
	ErrInvalidAmount       = errors.New("invalid amount")
)

type AccountRepo interface {
	Get(ctx context.Context, ownerType string, ownerID int) (*domain.CreditAccount, error)
	GetForUpdate(ctx context.Context, ownerType string, ownerID int) (*domain.CreditAccount, error)
	Create(ctx context.Context, ownerType string, ownerID int) (*domain.CreditAccount, error)
	UpdateTotals(ctx context.Context, account *domain.CreditAccount) error
	InsertTransaction(ctx context.Context, transaction *domain.CreditTransaction) error
	HasOrderTransactions(ctx context.Context, orderID int) (bool, error)
	ListTransactions(ctx context.Context, accountID, limit, offset int) ([]domain.CreditTransaction, error)
}

type CodeRepo interface {
	FindByCode(ctx context.Context, code string) (*domain.RechargeCode, error)
	Insert(ctx context.Context, code *domain.RechargeCode) error
	MarkRedeemed(ctx context.Context, codeID, redeemerID int) (bool, error)
	MarkVoided(ctx context.Context, codeID, actorID int) (bool, error)
}

type PartyRepo interface {
	GetRider(ctx context.Context, id int) (*domain.Rider, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
}

type ItemsRepo interface {
	ItemsByOrderID(ctx context.Context, orderID int) ([]domain.OrderItem, error)
}

type Service struct {
	accounts  AccountRepo
	codes     CodeRepo
	parties   PartyRepo
	items     ItemsRepo
	txManager pg.TXManager
}

func New(accounts AccountRepo, codeRepo CodeRepo, parties PartyRepo, items ItemsRepo, txManager pg.TXManager) *Service {
	return &Service{
		accounts:  accounts,
		codes:     codeRepo,
		parties:   parties,
		items:     items,
		txManager: txManager,
	}
}

// post appends one transaction and moves the cached account totals with it.
// Must run inside a transaction. Commission and food debits may push the
// balance negative: that is the amount the holder owes the platform.
func (s *Service) post(ctx context.Context, ownerType string, ownerID int, txType string, amount int64, orderID *int, batchID *string, note string, actorID *int, lazyCreate bool) (*domain.CreditTransaction, error) {
	account, err := s.accounts.GetForUpdate(ctx, ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		if !lazyCreate {
			return nil, ErrUnknownAccount
		}
		account, err = s.accounts.Create(ctx, ownerType, ownerID)
		if err != nil {
			return nil, err
		}
	}

	transaction := &domain.CreditTransaction{
		AccountID:     account.ID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: account.Balance,
		BalanceAfter:  account.Balance + amount,
		OrderID:       orderID,
		BatchID:       batchID,
		Note:          note,
		ActorID:       actorID,
		CreatedAt:     time.Now(),
	}
	if err := s.accounts.InsertTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	account.Balance += amount
	switch txType {
	case TxOrderDeliveryCredit, TxOrderCredit:
		account.TotalEarned += amount
	case TxLiquidation:
		account.TotalLiquidated += -amount
	}
	if err := s.accounts.UpdateTotals(ctx, account); err != nil {
		return nil, err
	}

	return transaction, nil
}

// ProcessDelivery posts the ledger effects of one delivered order as a
// single batch: restaurant commission debit, rider delivery credit for
// commission-paid riders, and the collected-funds debit/credit pair when the
// rider took the money. It joins the caller's transaction and is idempotent
// per order.
func (s *Service) ProcessDelivery(ctx context.Context, order *domain.Order) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		processed, err := s.accounts.HasOrderTransactions(ctx, order.ID)
		if err != nil {
			return err
		}
		if processed {
			zap.L().Info("delivery credits already posted", zap.Int("order_id", order.ID))
			return nil
		}

		if order.RiderID == nil {
			return fmt.Errorf("%w: order %d has no rider", ErrUnknownParty, order.ID)
		}
		rider, err := s.parties.GetRider(ctx, *order.RiderID)
		if err != nil {
			return err
		}
		restaurant, err := s.parties.GetRestaurant(ctx, order.RestaurantID)
		if err != nil {
			return err
		}
		if rider == nil || restaurant == nil {
			return ErrUnknownParty
		}

		commission, err := s.restaurantCommission(ctx, order, restaurant)
		if err != nil {
			return err
		}

		batchID := uuid.NewString()
		orderID := order.ID

		if _, err := s.post(ctx, OwnerRestaurant, restaurant.ID, TxOrderCommissionDebit, -commission,
			&orderID, &batchID, "commission on order "+order.Code, nil, true); err != nil {
			return err
		}

		if rider.PayType == PayTypeCommission {
			// Per-order floor; the flooring residual stays with the platform.
			riderShare := money.FloorRate(order.DeliveryFee, rider.CommissionRate)
			if _, err := s.post(ctx, OwnerRider, rider.ID, TxOrderDeliveryCredit, riderShare,
				&orderID, &batchID, "delivery commission on order "+order.Code, nil, true); err != nil {
				return err
			}
		}

		if riderCollected[order.CollectedMethod()] {
			restaurantPortion := order.Subtotal - commission
			if _, err := s.post(ctx, OwnerRider, rider.ID, TxOrderFoodDebit, -restaurantPortion,
				&orderID, &batchID, "collected funds for order "+order.Code, nil, true); err != nil {
				return err
			}
			if _, err := s.post(ctx, OwnerRestaurant, restaurant.ID, TxOrderCredit, restaurantPortion,
				&orderID, &batchID, "sales for order "+order.Code, nil, true); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *Service) restaurantCommission(ctx context.Context, order *domain.Order, restaurant *domain.Restaurant) (int64, error) {
	if restaurant.CommissionMode != ModePerItem {
		return money.FloorRate(order.Subtotal, restaurant.CommissionRate), nil
	}

	items, err := s.items.ItemsByOrderID(ctx, order.ID)
	if err != nil {
		return 0, err
	}
	var commission int64
	for _, item := range items {
		commission += money.FloorRate(item.Total, item.CommissionRate)
	}
	return commission, nil
}

// RedeemCode flips the code to redeemed and credits the rider in one
// transaction. The conditional status flip makes concurrent redemption
// attempts lose with ErrCodeAlreadyRedeemed instead of double-crediting.
func (s *Service) RedeemCode(ctx context.Context, code string, riderID, actorID int) (*domain.CreditAccount, error) {
	var account *domain.CreditAccount

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rc, err := s.codes.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if rc == nil {
			return ErrCodeNotFound
		}
		switch rc.Status {
		case CodeRedeemed:
			return ErrCodeAlreadyRedeemed
		case CodeVoided:
			return ErrCodeVoided
		}

		flipped, err := s.codes.MarkRedeemed(ctx, rc.ID, riderID)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrCodeAlreadyRedeemed
		}

		if _, err := s.post(ctx, OwnerRider, riderID, TxRecharge, rc.Amount,
			nil, nil, "recharge code "+rc.Code, &actorID, true); err != nil {
			return err
		}

		account, err = s.accounts.Get(ctx, OwnerRider, riderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GenerateCode mints a Luhn-checked recharge code for later redemption.
func (s *Service) GenerateCode(ctx context.Context, amount int64, actorID int, riderHint *int) (*domain.RechargeCode, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	value, err := codes.New(codes.Length)
	if err != nil {
		zap.L().Error("failed to generate recharge code", zap.Error(err))
		return nil, err
	}

	rc := &domain.RechargeCode{
		Code:      value,
		Amount:    amount,
		Status:    CodePending,
		RiderHint: riderHint,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	}
	if err := s.codes.Insert(ctx, rc); err != nil {
		zap.L().Error("failed to insert recharge code", zap.Error(err))
		return nil, err
	}
	return rc, nil
}

// VoidCode retires a pending code. Redeemed codes cannot be voided.
func (s *Service) VoidCode(ctx context.Context, code string, actorID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		rc, err := s.codes.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if rc == nil {
			return ErrCodeNotFound
		}
		switch rc.Status {
		case CodeRedeemed:
			return ErrCodeAlreadyRedeemed
		case CodeVoided:
			return ErrCodeVoided
		}

		flipped, err := s.codes.MarkVoided(ctx, rc.ID, actorID)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrCodeAlreadyRedeemed
		}
		return nil
	})
}

// ManualAdjustment posts a signed correction against an existing account.
// Lazy account creation is deliberately disallowed here: adjusting a balance
// nobody has earned yet is almost always a typo.
func (s *Service) ManualAdjustment(ctx context.Context, ownerType string, ownerID int, amount int64, note string, actorID int) (*domain.CreditAccount, error) {
	if len(note) < minAdjustmentNote {
		return nil, ErrNoteTooShort
	}
	if amount == 0 {
		return nil, ErrInvalidAmount
	}

	var account *domain.CreditAccount
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.post(ctx, ownerType, ownerID, TxAdjustment, amount,
			nil, nil, note, &actorID, false); err != nil {
			return err
		}
		var err error
		account, err = s.accounts.Get(ctx, ownerType, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) GetBalance(ctx context.Context, ownerType string, ownerID int) (*domain.CreditAccount, error) {
	account, err := s.accounts.Get(ctx, ownerType, ownerID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrUnknownAccount
	}
	return account, nil
}

func (s *Service) ListTransactions(ctx context.Context, ownerType string, ownerID, limit, offset int) ([]domain.CreditTransaction, error) {
	account, err := s.accounts.Get(ctx, ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrUnknownAccount
	}
	transactions, err := s.accounts.ListTransactions(ctx, account.ID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
