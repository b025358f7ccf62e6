package domain

import "time"

// All monetary amounts are integer minor currency units.

type Rider struct {
	ID             int       `db:"id"`
	Name           string    `db:"name"`
	PayType        string    `db:"pay_type"`
	CommissionRate float64   `db:"commission_rate"`
	FixedSalary    int64     `db:"fixed_salary"`
	CityID         int       `db:"city_id"`
	CreatedAt      time.Time `db:"created_at"`
}

type Restaurant struct {
	ID             int       `db:"id"`
	Name           string    `db:"name"`
	CommissionRate float64   `db:"commission_rate"`
	CommissionMode string    `db:"commission_mode"`
	CityID         int       `db:"city_id"`
	CreatedAt      time.Time `db:"created_at"`
}

type Order struct {
	ID           int    `db:"id"`
	Code         string `db:"code"`
	RestaurantID int    `db:"restaurant_id"`
	// RiderID is a soft reference resolved through the party repo.
	RiderID             *int       `db:"rider_id"`
	CityID              int        `db:"city_id"`
	Status              string     `db:"status"`
	Subtotal            int64      `db:"subtotal"`
	DeliveryFee         int64      `db:"delivery_fee"`
	ServiceFee          int64      `db:"service_fee"`
	Discount            int64      `db:"discount"`
	Total               int64      `db:"total"`
	PaymentMethod       string     `db:"payment_method"`
	ActualPaymentMethod *string    `db:"actual_payment_method"`
	DeliveryProofURL    *string    `db:"delivery_proof_url"`
	PaymentProofURL     *string    `db:"payment_proof_url"`
	RejectReason        *string    `db:"reject_reason"`
	CreatedAt           time.Time  `db:"created_at"`
	DeliveredAt         *time.Time `db:"delivered_at"`
	CancelledAt         *time.Time `db:"cancelled_at"`
}

// CollectedMethod is the payment method the money actually moved through:
// the observed method when recorded at delivery, the declared one otherwise.
func (o *Order) CollectedMethod() string {
	if o.ActualPaymentMethod != nil && *o.ActualPaymentMethod != "" {
		return *o.ActualPaymentMethod
	}
	return o.PaymentMethod
}

type OrderItem struct {
	ID             int     `db:"id"`
	OrderID        int     `db:"order_id"`
	Name           string  `db:"name"`
	Quantity       int     `db:"quantity"`
	UnitPrice      int64   `db:"unit_price"`
	Total          int64   `db:"total"`
	CommissionRate float64 `db:"commission_rate"`
}

type StatusTransition struct {
	ID         int       `db:"id"`
	OrderID    int       `db:"order_id"`
	FromStatus string    `db:"from_status"`
	ToStatus   string    `db:"to_status"`
	ActorID    int       `db:"actor_id"`
	Notes      string    `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
}

type CreditAccount struct {
	ID              int       `db:"id"`
	OwnerType       string    `db:"owner_type"`
	OwnerID         int       `db:"owner_id"`
	Balance         int64     `db:"balance"`
	TotalEarned     int64     `db:"total_earned"`
	TotalLiquidated int64     `db:"total_liquidated"`
	CreatedAt       time.Time `db:"created_at"`
}

type CreditTransaction struct {
	ID            int       `db:"id"`
	AccountID     int       `db:"account_id"`
	Type          string    `db:"type"`
	Amount        int64     `db:"amount"`
	BalanceBefore int64     `db:"balance_before"`
	BalanceAfter  int64     `db:"balance_after"`
	OrderID       *int      `db:"order_id"`
	BatchID       *string   `db:"batch_id"`
	Note          string    `db:"note"`
	ActorID       *int      `db:"actor_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type RechargeCode struct {
	ID         int        `db:"id"`
	Code       string     `db:"code"`
	Amount     int64      `db:"amount"`
	Status     string     `db:"status"`
	RiderHint  *int       `db:"rider_hint"`
	CreatedBy  int        `db:"created_by"`
	CreatedAt  time.Time  `db:"created_at"`
	RedeemedBy *int       `db:"redeemed_by"`
	RedeemedAt *time.Time `db:"redeemed_at"`
	VoidedBy   *int       `db:"voided_by"`
	VoidedAt   *time.Time `db:"voided_at"`
}

type Settlement struct {
	ID                int        `db:"id"`
	EntityType        string     `db:"entity_type"`
	EntityID          int        `db:"entity_id"`
	PeriodStart       time.Time  `db:"period_start"`
	PeriodEnd         time.Time  `db:"period_end"`
	OrdersCount       int        `db:"orders_count"`
	GrossSales        int64      `db:"gross_sales"`
	CashCollected     int64      `db:"cash_collected"`
	POSCollected      int64      `db:"pos_collected"`
	DigitalCollected  int64      `db:"digital_collected"`
	DeliveryFees      int64      `db:"delivery_fees"`
	Commission        int64      `db:"commission"`
	Bonuses           int64      `db:"bonuses"`
	FuelReimbursement int64      `db:"fuel_reimbursement"`
	NetPayout         int64      `db:"net_payout"`
	Status            string     `db:"status"`
	Notes             string     `db:"notes"`
	PaidAt            *time.Time `db:"paid_at"`
	CreatedAt         time.Time  `db:"created_at"`
}

type DailyCashReport struct {
	ID              int       `db:"id"`
	RiderID         int       `db:"rider_id"`
	ReportDate      time.Time `db:"report_date"`
	DeclaredCash    int64     `db:"declared_cash"`
	DeclaredPOS     int64     `db:"declared_pos"`
	DeclaredDigital int64     `db:"declared_digital"`
	ExpectedCash    int64     `db:"expected_cash"`
	ExpectedPOS     int64     `db:"expected_pos"`
	ExpectedDigital int64     `db:"expected_digital"`
	Discrepancy     int64     `db:"discrepancy"`
	Flagged         bool      `db:"flagged"`
	Status          string    `db:"status"`
	Note            string    `db:"note"`
	ReviewedBy      *int      `db:"reviewed_by"`
	CreatedAt       time.Time `db:"created_at"`
}
