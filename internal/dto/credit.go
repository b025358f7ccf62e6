package dto

import "time"

type RedeemRequestDTO struct {
	Code    string `json:"code" example:"12345674"`
	RiderID int    `json:"rider_id" example:"42"`
}

type BalanceResponseDTO struct {
	OwnerType       string `json:"owner_type" example:"rider"`
	OwnerID         int    `json:"owner_id" example:"42"`
	Balance         int64  `json:"balance" example:"12500"`
	TotalEarned     int64  `json:"total_earned" example:"80000"`
	TotalLiquidated int64  `json:"total_liquidated" example:"67500"`
}

type AdjustmentRequestDTO struct {
	EntityType string `json:"entity_type" example:"rider"`
	EntityID   int    `json:"entity_id" example:"42"`
	Amount     int64  `json:"amount" example:"-1500"`
	Note       string `json:"note" example:"correction for order VLZ-10293"`
}

type GenerateCodeRequestDTO struct {
	Amount    int64 `json:"amount" example:"5000"`
	RiderHint *int  `json:"rider_hint,omitempty" example:"42"`
}

type CodeResponseDTO struct {
	Code      string    `json:"code" example:"12345674"`
	Amount    int64     `json:"amount" example:"5000"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at"`
}

type TransactionResponseDTO struct {
	ID            int       `json:"id" example:"981"`
	Type          string    `json:"type" example:"order_delivery_credit"`
	Amount        int64     `json:"amount" example:"200"`
	BalanceBefore int64     `json:"balance_before" example:"12300"`
	BalanceAfter  int64     `json:"balance_after" example:"12500"`
	OrderID       *int      `json:"order_id,omitempty" example:"101"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
