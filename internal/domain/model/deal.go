// Package model defines the core domain entities for the deal service.
package model

// Deal is one greedy step of the calculation: Count deals of size Power.
//
// @Description One group of deals of the same size
// @Example {"power": 9, "exponent": 2, "count": 2, "cost_per_deal": 33, "cost": 66}
type Deal struct {
	// Power is the deal size, a power of three
	Power int64 `json:"power" bson:"power" example:"9"`
	// Exponent is x such that Power = 3^x
	Exponent int64 `json:"exponent" bson:"exponent" example:"2"`
	// Count is the number of deals of this size
	Count int64 `json:"count" bson:"count" example:"2"`
	// CostPerDeal is the cost of a single deal of this size
	CostPerDeal int64 `json:"cost_per_deal" bson:"cost_per_deal" example:"33"`
	// Cost is Count * CostPerDeal
	Cost int64 `json:"cost" bson:"cost" example:"66"`
}

// Units returns the quantity consumed by this group of deals.
func (d Deal) Units() int64 {
	return d.Power * d.Count
}

// DealResult is the complete result of a cost calculation.
//
// @Description Minimum total cost for a quantity with the deals that produce it
// @Example {"quantity": 26, "total_cost": 92, "deals": [{"power": 9, "exponent": 2, "count": 2, "cost_per_deal": 33, "cost": 66}]}
type DealResult struct {
	// Quantity is the quantity that was requested
	Quantity int64 `json:"quantity" example:"26"`
	// TotalCost is the minimum total cost
	TotalCost int64 `json:"total_cost" example:"92"`
	// Deals lists the deals, largest power first
	Deals []Deal `json:"deals"`
}

// DealCount returns the total number of deals made.
func (r DealResult) DealCount() int64 {
	var n int64
	for _, d := range r.Deals {
		n += d.Count
	}
	return n
}

// Empty returns the result for a quantity that needs no deals.
func Empty(quantity int64) DealResult {
	return DealResult{
		Quantity:  quantity,
		TotalCost: 0,
		Deals:     []Deal{},
	}
}
