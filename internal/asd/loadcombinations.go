package asd

import "github.com/shopspring/decimal"

// LoadCombination is one of the fixed load cases for the load component
// normal to the roof plane
type LoadCombination struct {
	ID          string
	Description string
	Factor      float64 // applied to the combined load
	Wind        bool    // wind pressure included
}

// LoadCombinations are the only cases the method considers. Wind is
// combined with gravity at a 0.75 factor (one third stress increase).
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "D + L",
		Factor:      1.0,
	},
	{
		ID:          "2",
		Description: "0.75(D + L + W)",
		Factor:      0.75,
		Wind:        true,
	},
}

// NormalLoad calculates the factored load (kg/m) for this combination from
// the gravity component normal to the roof and the wind load per meter
func (lc LoadCombination) NormalLoad(gravity, wind decimal.Decimal) decimal.Decimal {
	w := gravity
	if lc.Wind {
		w = w.Add(wind)
	}
	return w.Mul(decimal.NewFromFloat(lc.Factor))
}

// GoverningNormalLoad finds the maximum factored load over all combinations.
// The first listed combination wins ties.
func GoverningNormalLoad(gravity, wind decimal.Decimal, combinations []LoadCombination) (decimal.Decimal, LoadCombination) {
	var maxLoad decimal.Decimal
	var governing LoadCombination

	for i, combo := range combinations {
		w := combo.NormalLoad(gravity, wind)
		if i == 0 || w.GreaterThan(maxLoad) {
			maxLoad = w
			governing = combo
		}
	}

	return maxLoad, governing
}
