package model

import "time"

// Calculation is a recorded cost calculation.
//
// @Description A previously served cost calculation
type Calculation struct {
	ID        string    `json:"id" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Quantity  int64     `json:"quantity" example:"26"`
	TotalCost int64     `json:"total_cost" example:"92"`
	DealCount int64     `json:"deal_count" example:"6"`
	Deals     []Deal    `json:"deals"`
	RequestID string    `json:"request_id,omitempty" example:"9f1c6c1e-3c1a-4d0e-9b7e-2f5b1f7a8c11"`
	CreatedAt time.Time `json:"created_at"`
}
