package purlin

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gopurlin/internal/asd"
	"github.com/alexiusacademia/gopurlin/internal/catalog"
)

var (
	// ErrInvalidInput is returned when a design parameter is outside its domain
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSection is returned when the trial section does not resolve
	ErrInvalidSection = catalog.ErrInvalidSection
)

// Input holds the design parameters of one purlin
type Input struct {
	// Data for design
	SagRod        asd.SagRod `json:"sag_rod" yaml:"sag_rod"`
	SpanLength    float64    `json:"span_length" yaml:"span_length"`       // L (m)
	PurlinSpacing float64    `json:"purlin_spacing" yaml:"purlin_spacing"` // tributary width (m)
	RoofSlope     float64    `json:"roof_slope" yaml:"roof_slope"`         // θ (degrees)
	TileWeight    float64    `json:"tile_weight" yaml:"tile_weight"`       // kg/m²
	LiveLoad      float64    `json:"live_load" yaml:"live_load"`           // kg/m²
	WindLoad      float64    `json:"wind_load" yaml:"wind_load"`           // kg/m²
	SelfWeight    float64    `json:"self_weight" yaml:"self_weight"`       // assumed purlin self weight

	// Steel properties
	ElasticModulus  float64 `json:"elastic_modulus" yaml:"elastic_modulus"` // E (ksc)
	YieldStrength   float64 `json:"yield_strength" yaml:"yield_strength"`   // Fy (ksc)
	DeflectionRatio int     `json:"deflection_ratio" yaml:"deflection_ratio"`

	// Trial section
	Table catalog.TableID `json:"table" yaml:"table"`
	Row   int             `json:"row" yaml:"row"` // 1-based
}

// DefaultInput returns the starting values of a new design
func DefaultInput() Input {
	return Input{
		SagRod:          asd.SagRodNone,
		LiveLoad:        30,
		WindLoad:        30,
		ElasticModulus:  asd.DefaultElasticModulus,
		YieldStrength:   2400,
		DeflectionRatio: 120,
		Table:           catalog.Pile,
		Row:             1,
	}
}

// ValidationError names the input field that is outside its domain
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.msg)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Validate checks every numeric and enumerated parameter.
// The trial section is resolved separately by Design.
func (in Input) Validate() error {
	var errs []error

	fail := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, msg: fmt.Sprintf(format, args...)})
	}
	positive := func(field string, v float64) {
		if !finite(v) || v <= 0 {
			fail(field, "must be positive, got %g", v)
		}
	}
	nonNegative := func(field string, v float64) {
		if !finite(v) || v < 0 {
			fail(field, "must not be negative, got %g", v)
		}
	}

	if _, err := in.SagRod.Coefficient(); err != nil {
		fail("sag_rod", "%v", err)
	}
	positive("span_length", in.SpanLength)
	positive("purlin_spacing", in.PurlinSpacing)
	if !finite(in.RoofSlope) || in.RoofSlope < 0 || in.RoofSlope > 90 {
		fail("roof_slope", "must be between 0 and 90 degrees, got %g", in.RoofSlope)
	}
	nonNegative("tile_weight", in.TileWeight)
	nonNegative("live_load", in.LiveLoad)
	nonNegative("wind_load", in.WindLoad)
	nonNegative("self_weight", in.SelfWeight)
	positive("elastic_modulus", in.ElasticModulus)
	if _, err := asd.GradeFor(in.YieldStrength); err != nil {
		fail("yield_strength", "%v", err)
	}
	if err := asd.CheckDeflectionRatio(in.DeflectionRatio); err != nil {
		fail("deflection_ratio", "%v", err)
	}

	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
