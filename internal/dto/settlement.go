package dto

import "time"

type CreateSettlementRequestDTO struct {
	EntityType  string `json:"entity_type" example:"rider"`
	EntityID    int    `json:"entity_id" example:"42"`
	PeriodStart string `json:"period_start" example:"2026-08-01"`
	PeriodEnd   string `json:"period_end" example:"2026-08-15"`
	Bonuses     int64  `json:"bonuses,omitempty" example:"2000"`
	Fuel        int64  `json:"fuel,omitempty" example:"3000"`
	Notes       string `json:"notes,omitempty"`
	DryRun      bool   `json:"dry_run,omitempty" example:"true"`
}

type UpdateSettlementRequestDTO struct {
	Status         string `json:"status" example:"paid"`
	FuelAdjustment *int64 `json:"fuel_adjustment,omitempty" example:"3500"`
}

type SettlementResponseDTO struct {
	ID                int        `json:"id" example:"12"`
	EntityType        string     `json:"entity_type" example:"rider"`
	EntityID          int        `json:"entity_id" example:"42"`
	PeriodStart       string     `json:"period_start" example:"2026-08-01"`
	PeriodEnd         string     `json:"period_end" example:"2026-08-15"`
	OrdersCount       int        `json:"orders_count" example:"73"`
	GrossSales        int64      `json:"gross_sales,omitempty" example:"0"`
	CashCollected     int64      `json:"cash_collected" example:"251000"`
	POSCollected      int64      `json:"pos_collected" example:"98000"`
	DigitalCollected  int64      `json:"digital_collected" example:"40000"`
	DeliveryFees      int64      `json:"delivery_fees" example:"36500"`
	Commission        int64      `json:"commission" example:"7300"`
	Bonuses           int64      `json:"bonuses" example:"2000"`
	FuelReimbursement int64      `json:"fuel_reimbursement" example:"3000"`
	NetPayout         int64      `json:"net_payout" example:"12300"`
	Status            string     `json:"status" example:"pending"`
	Notes             string     `json:"notes,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}
