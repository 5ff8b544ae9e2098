package asd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Allowable stress design constants for steel purlins.
// Stresses and moduli are in ksc (kg/cm²).

const (
	// Allowable bending stress Fb = 0.6 Fy
	AllowableBendingFactor = 0.6

	// Roof slope (degrees) at or below which wind pressure on the roof is ignored
	WindSlopeThreshold = 18.0

	// Modulus of elasticity of structural steel
	DefaultElasticModulus = 2040000.0
)

var (
	ErrUnknownGrade           = errors.New("unsupported yield strength")
	ErrUnknownDeflectionRatio = errors.New("unsupported deflection ratio")
)

// Grade is a structural steel grade
type Grade struct {
	Name     string  `json:"name"`
	Yield    float64 `json:"yield"`    // Fy (ksc)
	Ultimate float64 `json:"ultimate"` // Fu (ksc)
}

// Grades lists the steel grades accepted for purlin design
var Grades = []Grade{
	{Name: "Fe-24", Yield: 2400, Ultimate: 4100},
	{Name: "Fe-30", Yield: 3000, Ultimate: 5000},
}

// GradeFor returns the grade with the given yield strength
func GradeFor(fy float64) (Grade, error) {
	for _, g := range Grades {
		if g.Yield == fy {
			return g, nil
		}
	}
	return Grade{}, fmt.Errorf("%w: %g ksc (use 2400 or 3000)", ErrUnknownGrade, fy)
}

// AllowableBendingStress calculates Fb for a yield strength
func AllowableBendingStress(fy decimal.Decimal) decimal.Decimal {
	return fy.Mul(decimal.NewFromFloat(AllowableBendingFactor))
}

// DeflectionRatios are the denominators n accepted for an L/n limit
var DeflectionRatios = []int{120, 150, 180, 200, 240, 250, 300, 360}

// CheckDeflectionRatio reports whether n is an accepted L/n denominator
func CheckDeflectionRatio(n int) error {
	if !slices.Contains(DeflectionRatios, n) {
		return fmt.Errorf("%w: L/%d", ErrUnknownDeflectionRatio, n)
	}
	return nil
}

// DeflectionLimit calculates the allowable deflection L/n in cm for a span in m
func DeflectionLimit(span decimal.Decimal, n int) decimal.Decimal {
	return span.Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(n)))
}
