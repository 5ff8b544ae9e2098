package purlin

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gopurlin/internal/asd"
	"github.com/alexiusacademia/gopurlin/internal/catalog"
)

// scenarioA is a 6 m span at 20° with light roofing.
func scenarioA() Input {
	return Input{
		SagRod:          asd.SagRodNone,
		SpanLength:      6,
		PurlinSpacing:   1.5,
		RoofSlope:       20,
		TileWeight:      10,
		LiveLoad:        30,
		WindLoad:        30,
		SelfWeight:      5,
		ElasticModulus:  asd.DefaultElasticModulus,
		YieldStrength:   2400,
		DeflectionRatio: 200,
		Table:           catalog.LightLipChannel,
		Row:             11,
	}
}

func TestScenarioA(t *testing.T) {
	p, err := New(scenarioA())
	require.NoError(t, err)

	l := p.Loads()
	assert.InDelta(t, 65.0, l.LoadOnPurlin, 1e-9)
	assert.InDelta(t, 1440.0, l.AllowableStress, 1e-9)
	assert.InDelta(t, 22.231309, l.Wx, 1e-5)
	assert.InDelta(t, 18.372083, l.WindFactor, 1e-5)
	assert.InDelta(t, 66.478609, l.Wy, 1e-5)
	assert.Equal(t, "2", l.Combination.ID)
	assert.InDelta(t, 299.15374, l.Mx, 1e-4)
	assert.InDelta(t, 100.040892, l.My, 1e-4)
	assert.InDelta(t, 20.774565, l.RequiredModulus, 1e-5)
	assert.InDelta(t, 3.0, l.DeflectionLimit, 1e-12)
	assert.InDelta(t, 112182652323.386, l.DeflectionIndex, 1e-2)
	assert.Equal(t, "Fe-24", p.Grade().Name)
}

func TestScenarioB(t *testing.T) {
	in := scenarioA()
	in.RoofSlope = 10

	for _, wind := range []float64{0, 30, 500} {
		in.WindLoad = wind
		p, err := New(in)
		require.NoError(t, err)

		l := p.Loads()
		assert.Zero(t, l.WindFactor)
		assert.InDelta(t, 65*math.Cos(10*math.Pi/180), l.Wy, 1e-6)
		assert.InDelta(t, 11.287132, l.Wx, 1e-5)
		assert.InDelta(t, 288.056268, l.Mx, 1e-4)
		assert.InDelta(t, 20.003907, l.RequiredModulus, 1e-5)
		assert.Equal(t, "1", l.Combination.ID)
	}
}

func TestWindSlopeThreshold(t *testing.T) {
	in := scenarioA()
	in.WindLoad = 500

	in.RoofSlope = 18
	p, err := New(in)
	require.NoError(t, err)
	assert.Zero(t, p.Loads().WindFactor)
	assert.InDelta(t, 61.818674, p.Loads().Wy, 1e-5)
	assert.InDelta(t, 19.318335, p.Loads().RequiredModulus, 1e-5)

	in.RoofSlope = 18.01
	p, err = New(in)
	require.NoError(t, err)
	assert.InDelta(t, 282.205769, p.Loads().WindFactor, 1e-5)
	assert.InDelta(t, 363.842866, p.Loads().Wy, 1e-5)
	assert.InDelta(t, 113.700896, p.Loads().RequiredModulus, 1e-5)
}

func TestSagRodMoment(t *testing.T) {
	test := []struct {
		rod  asd.SagRod
		want float64
	}{
		{asd.SagRodNone, 100.040892},
		{asd.SagRodMidSpan, 25.010223},
		{asd.SagRodThirdSpan, 9.146596},
	}
	for _, tt := range test {
		t.Run(tt.rod.String(), func(t *testing.T) {
			in := scenarioA()
			in.SagRod = tt.rod
			p, err := New(in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, p.Loads().My, 1e-5)
		})
	}

	for _, bad := range []asd.SagRod{0, 4} {
		in := scenarioA()
		in.SagRod = bad
		_, err := New(in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestRequiredModulusIndependentOfSection(t *testing.T) {
	var want float64
	for i, info := range catalog.ListTables() {
		in := scenarioA()
		in.Table = info.ID
		in.Row = info.RowCount
		res, err := Design(in)
		require.NoError(t, err)
		if i == 0 {
			want = res.Loads.RequiredModulus
			continue
		}
		assert.Equal(t, want, res.Loads.RequiredModulus, info.ID)
	}
}

func TestMonotonicity(t *testing.T) {
	prev := Loads{}
	for i, live := range []float64{0, 10, 30, 75, 150, 300, 500} {
		in := scenarioA()
		in.LiveLoad = live
		p, err := New(in)
		require.NoError(t, err)
		l := p.Loads()
		if i > 0 {
			assert.GreaterOrEqual(t, l.LoadOnPurlin, prev.LoadOnPurlin)
			assert.GreaterOrEqual(t, l.Mx, prev.Mx)
			assert.GreaterOrEqual(t, l.RequiredModulus, prev.RequiredModulus)
		}
		prev = l
	}

	prev = Loads{}
	for i, tile := range []float64{0, 5, 20, 100, 500} {
		in := scenarioA()
		in.TileWeight = tile
		p, err := New(in)
		require.NoError(t, err)
		l := p.Loads()
		if i > 0 {
			assert.GreaterOrEqual(t, l.LoadOnPurlin, prev.LoadOnPurlin)
			assert.GreaterOrEqual(t, l.Mx, prev.Mx)
			assert.GreaterOrEqual(t, l.RequiredModulus, prev.RequiredModulus)
		}
		prev = l
	}
}

func TestModulusRoundTrip(t *testing.T) {
	p, err := New(scenarioA())
	require.NoError(t, err)

	for _, info := range catalog.ListTables() {
		rows, err := catalog.Rows(info.ID)
		require.NoError(t, err)
		for _, sec := range rows {
			res, err := p.Check(sec)
			require.NoError(t, err)
			assert.Equal(t, math.Max(sec.Zx, sec.Zy), res.ActualModulus, "%s row %d", info.ID, sec.Index)
		}
	}
}

func TestVerdicts(t *testing.T) {
	test := []struct {
		name   string
		modify func(*Input)
		stress float64
		defl   float64

		bending, deflection, modulus, selfWeight bool
	}{
		{
			name:   "undersized section fails every check",
			modify: func(in *Input) { in.Row = 3 },
			stress: 3508.937562, defl: 6.814312,
			selfWeight: true,
		},
		{
			name:   "adequate section heavier than assumed",
			modify: func(in *Input) { in.SagRod = asd.SagRodMidSpan },
			stress: 775.231848, defl: 1.5025,
			bending: true, deflection: true, modulus: true,
		},
		{
			name: "adequate section within assumed weight",
			modify: func(in *Input) {
				in.SagRod = asd.SagRodMidSpan
				in.SelfWeight = 12
				in.Row = 14
			},
			stress: 515.528371, defl: 0.678214,
			bending: true, deflection: true, modulus: true, selfWeight: true,
		},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioA()
			tt.modify(&in)
			res, err := Design(in)
			require.NoError(t, err)

			c := res.Check
			assert.InDelta(t, tt.stress, c.ActualStress, 1e-4)
			assert.InDelta(t, tt.defl, c.ActualDeflection, 1e-5)
			assert.Equal(t, tt.bending, c.Bending.Pass, "bending")
			assert.Equal(t, tt.deflection, c.Deflection.Pass, "deflection")
			assert.Equal(t, tt.modulus, c.Modulus.Pass, "modulus")
			assert.Equal(t, tt.selfWeight, c.SelfWeight.Pass, "self weight")
			assert.Equal(t, tt.bending && tt.deflection && tt.modulus && tt.selfWeight, c.Adequate())
		})
	}
}

func TestVerdictMessages(t *testing.T) {
	in := scenarioA()
	in.Row = 3
	res, err := Design(in)
	require.NoError(t, err)
	assert.Equal(t, "Fail!", res.Check.Bending.Message)
	assert.Equal(t, "exceeds 3.00 cm. Fail!", res.Check.Deflection.Message)
	assert.Equal(t, 3.0, res.Check.Deflection.Limit)
	assert.Equal(t, "Fail!", res.Check.Modulus.Message)
	assert.Equal(t, "OK.!", res.Check.SelfWeight.Message)

	in = scenarioA()
	in.SagRod = asd.SagRodMidSpan
	res, err = Design(in)
	require.NoError(t, err)
	assert.Equal(t, "OK.!", res.Check.Bending.Message)
	assert.Equal(t, "OK.! (L/200)", res.Check.Deflection.Message)
	assert.Zero(t, res.Check.Deflection.Limit)
	assert.Equal(t, "increase design self weight", res.Check.SelfWeight.Message)
}

func TestSelfWeightOnlyFlaggedWhenOtherChecksPass(t *testing.T) {
	// Bending fails and the section outweighs the zero allowance.
	in := scenarioA()
	in.SelfWeight = 0
	in.Table = catalog.Pile
	in.Row = 1

	res, err := Design(in)
	require.NoError(t, err)
	assert.False(t, res.Check.Bending.Pass)
	assert.Greater(t, res.Section.Weight, in.SelfWeight)
	assert.True(t, res.Check.SelfWeight.Pass)
}

func TestRowOutOfRange(t *testing.T) {
	for _, row := range []int{0, -1, 16} {
		in := scenarioA()
		in.Row = row
		_, err := Design(in)
		assert.ErrorIs(t, err, ErrInvalidSection, "row %d", row)
		assert.NotErrorIs(t, err, ErrInvalidInput)
	}

	in := scenarioA()
	in.Table = "Z"
	_, err := Design(in)
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestDisplayNameTable(t *testing.T) {
	in := scenarioA()
	in.Table = "Light Lip Channel Section"
	res, err := Design(in)
	require.NoError(t, err)
	assert.Equal(t, catalog.LightLipChannel, res.Section.Table)
	assert.Equal(t, "150*75*20", res.Section.Size)
}

func TestCheckRejectsDegenerateSection(t *testing.T) {
	p, err := New(scenarioA())
	require.NoError(t, err)

	_, err = p.Check(catalog.Section{Size: "x", Zx: 1, Zy: 0, Ix: 1, Iy: 1})
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestValidate(t *testing.T) {
	test := []struct {
		name   string
		modify func(*Input)
		field  string
	}{
		{"zero span", func(in *Input) { in.SpanLength = 0 }, "span_length"},
		{"negative spacing", func(in *Input) { in.PurlinSpacing = -1 }, "purlin_spacing"},
		{"steep slope", func(in *Input) { in.RoofSlope = 91 }, "roof_slope"},
		{"NaN tile", func(in *Input) { in.TileWeight = math.NaN() }, "tile_weight"},
		{"negative live", func(in *Input) { in.LiveLoad = -5 }, "live_load"},
		{"infinite wind", func(in *Input) { in.WindLoad = math.Inf(1) }, "wind_load"},
		{"negative self weight", func(in *Input) { in.SelfWeight = -0.1 }, "self_weight"},
		{"zero modulus", func(in *Input) { in.ElasticModulus = 0 }, "elastic_modulus"},
		{"unknown grade", func(in *Input) { in.YieldStrength = 2500 }, "yield_strength"},
		{"unknown ratio", func(in *Input) { in.DeflectionRatio = 100 }, "deflection_ratio"},
		{"unknown sag rod", func(in *Input) { in.SagRod = 7 }, "sag_rod"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioA()
			tt.modify(&in)
			err := in.Validate()
			require.ErrorIs(t, err, ErrInvalidInput)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	assert.NoError(t, scenarioA().Validate())
}

func TestValidateCollectsAllFields(t *testing.T) {
	in := scenarioA()
	in.SpanLength = -1
	in.YieldStrength = 1
	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "span_length")
	assert.Contains(t, err.Error(), "yield_strength")
}

func TestDefaultInputNeedsGeometry(t *testing.T) {
	in := DefaultInput()
	assert.ErrorIs(t, in.Validate(), ErrInvalidInput)

	in.SpanLength = 4
	in.PurlinSpacing = 1
	res, err := Design(in)
	require.NoError(t, err)
	assert.Equal(t, catalog.Pile, res.Section.Table)
	assert.Equal(t, "Fe-24", res.Grade.Name)
}

func TestCombinations(t *testing.T) {
	in := scenarioA()
	in.WindLoad = 500
	in.RoofSlope = 18.01
	p, err := New(in)
	require.NoError(t, err)

	combos := p.Combinations()
	require.Len(t, combos, len(asd.LoadCombinations))

	governs := 0
	for _, c := range combos {
		assert.LessOrEqual(t, c.Wy, p.Loads().Wy+1e-9)
		assert.InDelta(t, c.Wy*in.SpanLength*in.SpanLength/8, c.Mx, 1e-6)
		if c.Governs {
			governs++
			assert.Equal(t, p.Loads().Combination, c.Combination)
			assert.InDelta(t, p.Loads().Wy, c.Wy, 1e-9)
			assert.InDelta(t, p.Loads().Mx, c.Mx, 1e-6)
		}
	}
	assert.Equal(t, 1, governs)
	assert.Equal(t, "2", p.Loads().Combination.ID)
	assert.InDelta(t, 65*math.Cos(18.01*math.Pi/180), combos[0].Wy, 1e-6)
}
