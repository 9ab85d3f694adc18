// Package solver computes the minimum cost of the greedy deal-making puzzle.
//
// A quantity n is consumed in deals. Each deal takes power = 3^x units, where
// power is the largest power of three not exceeding what is left, and costs
// 3*power + x*(power/3) (or 3 when x == 0). The total cost is the sum over all
// deals until nothing is left.
package solver

import "github.com/guttosm/deal-service/internal/domain/model"

// MaxQuantity is the largest quantity whose total cost is guaranteed to fit in
// an int64. Callers that accept untrusted input should reject anything above it.
const MaxQuantity int64 = 100_000_000_000_000_000

// baseCost is the cost of a deal of size 1 (x == 0).
const baseCost int64 = 3

// LargestPower returns the largest power of three not exceeding n together
// with its exponent. For n < 3 it returns (1, 0).
func LargestPower(n int64) (power, exponent int64) {
	power = 1
	for power <= n/3 {
		power *= 3
		exponent++
	}
	return power, exponent
}

// CostPerDeal returns the cost of a single deal of the given size.
func CostPerDeal(power, exponent int64) int64 {
	if exponent == 0 {
		return baseCost
	}
	return 3*power + exponent*(power/3)
}

// Cost returns the minimum total cost for quantity n.
// It returns 0 for n <= 0.
func Cost(n int64) int64 {
	var cost int64
	for n > 0 {
		power, x := LargestPower(n)
		deals := n / power
		cost += deals * CostPerDeal(power, x)
		n -= deals * power
	}
	return cost
}

// Breakdown runs the same loop as Cost and returns every step, largest power
// first. The costs of the returned deals add up to Cost(n).
func Breakdown(n int64) []model.Deal {
	deals := make([]model.Deal, 0, 8)
	for n > 0 {
		power, x := LargestPower(n)
		count := n / power
		perDeal := CostPerDeal(power, x)
		deals = append(deals, model.Deal{
			Power:       power,
			Exponent:    x,
			Count:       count,
			CostPerDeal: perDeal,
			Cost:        count * perDeal,
		})
		n -= count * power
	}
	return deals
}

// Result returns the full DealResult for quantity n.
func Result(n int64) model.DealResult {
	if n <= 0 {
		return model.Empty(n)
	}
	deals := Breakdown(n)
	var total int64
	for _, d := range deals {
		total += d.Cost
	}
	return model.DealResult{
		Quantity:  n,
		TotalCost: total,
		Deals:     deals,
	}
}
