package dto

type SubmitReportRequestDTO struct {
	Date            string `json:"date" example:"2026-08-30"`
	DeclaredCash    int64  `json:"declared_cash" example:"10000"`
	DeclaredPOS     int64  `json:"declared_pos" example:"4000"`
	DeclaredDigital int64  `json:"declared_digital" example:"1500"`
}

type ReviewReportRequestDTO struct {
	Status string `json:"status" example:"approved"`
	Note   string `json:"note,omitempty" example:"short 600, rider notified"`
}

type ReportResponseDTO struct {
	ID              int    `json:"id" example:"55"`
	RiderID         int    `json:"rider_id" example:"42"`
	Date            string `json:"date" example:"2026-08-30"`
	DeclaredCash    int64  `json:"declared_cash" example:"10000"`
	DeclaredPOS     int64  `json:"declared_pos" example:"4000"`
	DeclaredDigital int64  `json:"declared_digital" example:"1500"`
	ExpectedCash    int64  `json:"expected_cash" example:"9400"`
	ExpectedPOS     int64  `json:"expected_pos" example:"4000"`
	ExpectedDigital int64  `json:"expected_digital" example:"1500"`
	Discrepancy     int64  `json:"discrepancy" example:"600"`
	Flagged         bool   `json:"flagged" example:"true"`
	Status          string `json:"status" example:"submitted"`
	Note            string `json:"note,omitempty"`
}

type RiderExpectedDTO struct {
	RiderID         int   `json:"rider_id" example:"42"`
	Deliveries      int   `json:"deliveries" example:"17"`
	ExpectedCash    int64 `json:"expected_cash" example:"9400"`
	ExpectedPOS     int64 `json:"expected_pos" example:"4000"`
	ExpectedDigital int64 `json:"expected_digital" example:"1500"`
}
