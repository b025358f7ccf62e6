package dto

import "time"

type TransitionRequestDTO struct {
	Status              string `json:"status" example:"delivered"`
	Notes               string `json:"notes,omitempty" example:"left at reception"`
	RiderID             *int   `json:"rider_id,omitempty" example:"42"`
	RejectReason        string `json:"reject_reason,omitempty" example:"out_of_stock"`
	ActualPaymentMethod string `json:"actual_payment_method,omitempty" example:"pos"`
	DeliveryProofURL    string `json:"delivery_proof_url,omitempty" example:"https://cdn.veloz.app/proof/123.jpg"`
	PaymentProofURL     string `json:"payment_proof_url,omitempty" example:"https://cdn.veloz.app/voucher/123.jpg"`
}

type OrderResponseDTO struct {
	ID                  int        `json:"id" example:"101"`
	Code                string     `json:"code" example:"VLZ-10293"`
	Status              string     `json:"status" example:"in_transit"`
	RestaurantID        int        `json:"restaurant_id" example:"7"`
	RiderID             *int       `json:"rider_id,omitempty" example:"42"`
	Subtotal            int64      `json:"subtotal" example:"4500"`
	DeliveryFee         int64      `json:"delivery_fee" example:"500"`
	ServiceFee          int64      `json:"service_fee" example:"0"`
	Discount            int64      `json:"discount" example:"0"`
	Total               int64      `json:"total" example:"5000"`
	PaymentMethod       string     `json:"payment_method" example:"cash"`
	ActualPaymentMethod *string    `json:"actual_payment_method,omitempty" example:"pos"`
	DeliveredAt         *time.Time `json:"delivered_at,omitempty"`
}

type CoverageResponseDTO struct {
	HasCoverage bool   `json:"has_coverage" example:"true"`
	BaseFee     int64  `json:"base_fee,omitempty" example:"500"`
	ZoneID      string `json:"zone_id,omitempty" example:"centro-1"`
}

type TransitionHistoryDTO struct {
	From      string    `json:"from" example:"picked_up"`
	To        string    `json:"to" example:"in_transit"`
	ActorID   int       `json:"actor_id" example:"42"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
