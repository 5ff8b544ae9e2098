package purlin

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/alexiusacademia/gopurlin/internal/asd"
	"github.com/alexiusacademia/gopurlin/internal/catalog"
)

// Loads holds the section independent results of a design (kg, m, cm units)
type Loads struct {
	LoadOnPurlin    float64             `json:"load_on_purlin"`   // kg/m
	WindFactor      float64             `json:"wind_factor"`      // r
	Wx              float64             `json:"wx"`               // load along the roof plane (kg/m)
	Wy              float64             `json:"wy"`               // governing load normal to the roof plane (kg/m)
	Combination     asd.LoadCombination `json:"combination"`      // governing case for Wy
	Mx              float64             `json:"mx"`               // kg-m
	My              float64             `json:"my"`               // kg-m
	SagRodCoeff     float64             `json:"sag_rod_coeff"`    // k
	DeflectionIndex float64             `json:"deflection_index"` // 5(100L)⁴·max(Wx,Wy)/384
	AllowableStress float64             `json:"allowable_stress"` // Fb (ksc)
	RequiredModulus float64             `json:"required_modulus"` // cm³
	DeflectionLimit float64             `json:"deflection_limit"` // L/n (cm)
}

// Verdict is the outcome of one design check
type Verdict struct {
	Pass    bool    `json:"pass"`
	Message string  `json:"message"`
	Limit   float64 `json:"limit,omitempty"` // allowable value surfaced on a failed deflection check
}

// CheckResult holds the trial section results
type CheckResult struct {
	ActualStress     float64 `json:"actual_stress"`     // ksc
	ActualDeflection float64 `json:"actual_deflection"` // cm
	ActualModulus    float64 `json:"actual_modulus"`    // cm³

	Bending    Verdict `json:"bending"`
	Deflection Verdict `json:"deflection"`
	Modulus    Verdict `json:"modulus"`
	SelfWeight Verdict `json:"self_weight"`
}

// Adequate reports whether every check passed
func (c *CheckResult) Adequate() bool {
	return c.Bending.Pass && c.Deflection.Pass && c.Modulus.Pass && c.SelfWeight.Pass
}

// DesignResult is the complete record of one design
type DesignResult struct {
	Input   Input           `json:"input"`
	Grade   asd.Grade       `json:"grade"`
	Loads   Loads           `json:"loads"`
	Section catalog.Section `json:"section"`
	Check   CheckResult     `json:"check"`
}

// Purlin is a validated design with its section independent quantities
// already evaluated. A Purlin is immutable and safe for concurrent use.
type Purlin struct {
	in    Input
	grade asd.Grade

	// kept in decimal for the section checks
	mx, my, deflIndex, fb, required, limit decimal.Decimal

	// normal load components before combination
	gravity, wind decimal.Decimal

	loads Loads
}

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	four    = decimal.NewFromInt(4)
	five    = decimal.NewFromInt(5)
	eight   = decimal.NewFromInt(8)
	deg     = decimal.NewFromInt(180)
	pi      = decimal.NewFromFloat(math.Pi)
)

// New validates the input and evaluates loads, moments, deflection index
// and required modulus
func New(in Input) (*Purlin, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	grade, _ := asd.GradeFor(in.YieldStrength)
	k, _ := in.SagRod.Coefficient()

	span := decimal.NewFromFloat(in.SpanLength)
	spacing := decimal.NewFromFloat(in.PurlinSpacing)
	slope := decimal.NewFromFloat(in.RoofSlope)

	// Load on purlin
	load := decimal.NewFromFloat(in.TileWeight).
		Add(decimal.NewFromFloat(in.LiveLoad)).
		Mul(spacing).
		Add(decimal.NewFromFloat(in.SelfWeight))

	rad := slope.Mul(pi).Div(deg)
	sin := rad.Sin()
	cos := rad.Cos()

	wx := load.Mul(sin)

	// Wind on the roof only counts above the threshold slope
	r := decimal.Zero
	if in.RoofSlope > asd.WindSlopeThreshold {
		r = two.Mul(decimal.NewFromFloat(in.WindLoad)).Mul(sin).
			Div(one.Add(sin.Pow(two)))
	}
	gravity := load.Mul(cos)
	wind := r.Mul(spacing)
	wy, combo := asd.GoverningNormalLoad(gravity, wind, asd.LoadCombinations)

	spanSq := span.Pow(two)
	mx := spanSq.Mul(wy).Div(eight)
	my := k.Mul(spanSq).Mul(wx)

	deflIndex := span.Mul(hundred).Pow(four).Mul(five).
		Mul(decimal.Max(wx, wy)).
		Div(decimal.NewFromInt(384))

	fb := asd.AllowableBendingStress(decimal.NewFromFloat(in.YieldStrength))
	required := hundred.Mul(decimal.Max(mx, my)).Div(fb)
	limit := asd.DeflectionLimit(span, in.DeflectionRatio)

	p := &Purlin{
		in:        in,
		grade:     grade,
		mx:        mx,
		my:        my,
		deflIndex: deflIndex,
		fb:        fb,
		required:  required,
		limit:     limit,
		gravity:   gravity,
		wind:      wind,
		loads: Loads{
			LoadOnPurlin:    load.InexactFloat64(),
			WindFactor:      r.InexactFloat64(),
			Wx:              wx.InexactFloat64(),
			Wy:              wy.InexactFloat64(),
			Combination:     combo,
			Mx:              mx.InexactFloat64(),
			My:              my.InexactFloat64(),
			SagRodCoeff:     k.InexactFloat64(),
			DeflectionIndex: deflIndex.InexactFloat64(),
			AllowableStress: fb.InexactFloat64(),
			RequiredModulus: required.InexactFloat64(),
			DeflectionLimit: limit.InexactFloat64(),
		},
	}
	return p, nil
}

// Input returns the validated design input
func (p *Purlin) Input() Input { return p.in }

// Grade returns the steel grade for the yield strength
func (p *Purlin) Grade() asd.Grade { return p.grade }

// Loads returns the section independent results
func (p *Purlin) Loads() Loads { return p.loads }

// CombinationLoad is the normal load of one load combination
type CombinationLoad struct {
	Combination asd.LoadCombination `json:"combination"`
	Wy          float64             `json:"wy"` // kg/m
	Mx          float64             `json:"mx"` // kg-m
	Governs     bool                `json:"governs"`
}

// Combinations evaluates every load combination. The governing one is the
// combination behind Loads().Wy.
func (p *Purlin) Combinations() []CombinationLoad {
	spanSq := decimal.NewFromFloat(p.in.SpanLength).Pow(two)

	out := make([]CombinationLoad, len(asd.LoadCombinations))
	for i, combo := range asd.LoadCombinations {
		wy := combo.NormalLoad(p.gravity, p.wind)
		out[i] = CombinationLoad{
			Combination: combo,
			Wy:          wy.InexactFloat64(),
			Mx:          spanSq.Mul(wy).Div(eight).InexactFloat64(),
			Governs:     combo.ID == p.loads.Combination.ID,
		}
	}
	return out
}

// Check evaluates a trial section against the design loads
func (p *Purlin) Check(sec catalog.Section) (*CheckResult, error) {
	props := []struct {
		name string
		v    float64
	}{{"Zx", sec.Zx}, {"Zy", sec.Zy}, {"Ix", sec.Ix}, {"Iy", sec.Iy}}
	for _, prop := range props {
		if !finite(prop.v) || prop.v <= 0 {
			return nil, fmt.Errorf("%w: %s %s has %s = %g", ErrInvalidSection, sec.Table, sec.Size, prop.name, prop.v)
		}
	}

	zx := decimal.NewFromFloat(sec.Zx)
	zy := decimal.NewFromFloat(sec.Zy)
	ix := decimal.NewFromFloat(sec.Ix)
	iy := decimal.NewFromFloat(sec.Iy)

	stress := hundred.Mul(p.mx).Div(zx).Add(hundred.Mul(p.my).Div(zy))
	deflection := p.deflIndex.Div(
		decimal.NewFromFloat(p.in.ElasticModulus).Mul(hundred).Mul(decimal.Max(ix, iy)),
	)
	modulus := decimal.Max(zx, zy)

	res := &CheckResult{
		ActualStress:     stress.InexactFloat64(),
		ActualDeflection: deflection.InexactFloat64(),
		ActualModulus:    modulus.InexactFloat64(),
	}

	res.Bending = passFail(stress.LessThanOrEqual(p.fb))

	if deflection.LessThanOrEqual(p.limit) {
		res.Deflection = Verdict{Pass: true, Message: fmt.Sprintf("OK.! (L/%d)", p.in.DeflectionRatio)}
	} else {
		limit := p.limit.InexactFloat64()
		res.Deflection = Verdict{Message: fmt.Sprintf("exceeds %.2f cm. Fail!", limit), Limit: limit}
	}

	res.Modulus = passFail(modulus.GreaterThanOrEqual(p.required))

	// Self weight is only flagged once the section otherwise works
	res.SelfWeight = passFail(true)
	if res.Bending.Pass && res.Deflection.Pass && res.Modulus.Pass &&
		decimal.NewFromFloat(sec.Weight).GreaterThan(decimal.NewFromFloat(p.in.SelfWeight)) {
		res.SelfWeight = Verdict{Message: "increase design self weight"}
	}

	return res, nil
}

// Design resolves the trial section of the input and checks it
func (p *Purlin) Design() (*DesignResult, error) {
	sec, err := catalog.Row(p.in.Table, p.in.Row)
	if err != nil {
		return nil, err
	}

	check, err := p.Check(sec)
	if err != nil {
		return nil, err
	}

	return &DesignResult{
		Input:   p.in,
		Grade:   p.grade,
		Loads:   p.loads,
		Section: sec,
		Check:   *check,
	}, nil
}

// Design validates the input and checks its trial section
func Design(in Input) (*DesignResult, error) {
	p, err := New(in)
	if err != nil {
		return nil, err
	}
	return p.Design()
}

func passFail(ok bool) Verdict {
	if ok {
		return Verdict{Pass: true, Message: "OK.!"}
	}
	return Verdict{Message: "Fail!"}
}
