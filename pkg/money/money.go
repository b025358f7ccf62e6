package money

import "math"

// drift compensates for binary float error in rate products
// (e.g. 50000*0.15 evaluating to 7500.000000000001).
const drift = 1e-9

// RoundUpTo rounds amount up to the nearest multiple of unit.
// Amounts are minor currency units and must be non-negative.
func RoundUpTo(amount, unit int64) int64 {
	if unit <= 1 {
		return amount
	}
	rem := amount % unit
	if rem == 0 {
		return amount
	}
	return amount + unit - rem
}

// FloorRate returns floor(amount * rate).
func FloorRate(amount int64, rate float64) int64 {
	return int64(math.Floor(float64(amount)*rate + drift))
}

// RoundUpRate returns ceil(amount * rate).
func RoundUpRate(amount int64, rate float64) int64 {
	return int64(math.Ceil(float64(amount)*rate - drift))
}

// Surcharge computes the card/POS service fee on base: base * rate
// grossed up by the tax rate, rounded up to the nearest 10 minor units.
func Surcharge(base int64, rate, taxRate float64) int64 {
	return RoundUpTo(RoundUpRate(base, rate*(1+taxRate)), 10)
}
