package asd

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestGradeFor(t *testing.T) {
	g, err := GradeFor(2400)
	require.NoError(t, err)
	assert.Equal(t, Grade{Name: "Fe-24", Yield: 2400, Ultimate: 4100}, g)

	g, err = GradeFor(3000)
	require.NoError(t, err)
	assert.Equal(t, Grade{Name: "Fe-30", Yield: 3000, Ultimate: 5000}, g)

	_, err = GradeFor(2500)
	assert.ErrorIs(t, err, ErrUnknownGrade)
}

func TestAllowableBendingStress(t *testing.T) {
	assert.True(t, decimal.NewFromInt(1440).Equal(AllowableBendingStress(decimal.NewFromInt(2400))))
	assert.True(t, decimal.NewFromInt(1800).Equal(AllowableBendingStress(decimal.NewFromInt(3000))))
}

func TestDeflectionRatio(t *testing.T) {
	for _, n := range DeflectionRatios {
		assert.NoError(t, CheckDeflectionRatio(n))
	}
	for _, n := range []int{0, 100, 239, 400} {
		assert.ErrorIs(t, CheckDeflectionRatio(n), ErrUnknownDeflectionRatio)
	}

	limit := DeflectionLimit(decimal.NewFromInt(6), 240)
	assert.True(t, decimal.NewFromFloat(2.5).Equal(limit), limit.String())
}

func TestSagRodCoefficient(t *testing.T) {
	test := []struct {
		rod  SagRod
		want string
	}{
		{SagRodNone, "0.125"},
		{SagRodMidSpan, "0.03125"},
		{SagRodThirdSpan, "0.0114285714285714"},
	}
	for _, tt := range test {
		k, err := tt.rod.Coefficient()
		require.NoError(t, err)
		assert.Equal(t, tt.want, k.String())
	}

	for _, bad := range []SagRod{0, 4, -1} {
		_, err := bad.Coefficient()
		assert.ErrorIs(t, err, ErrUnknownSagRod)
	}
}

func TestParseSagRod(t *testing.T) {
	test := []struct {
		in   string
		want SagRod
	}{
		{"1", SagRodNone},
		{"none", SagRodNone},
		{"Mid", SagRodMidSpan},
		{"2", SagRodMidSpan},
		{"third-span", SagRodThirdSpan},
		{"L/3", SagRodThirdSpan},
	}
	for _, tt := range test {
		got, err := ParseSagRod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseSagRod("quarter")
	assert.ErrorIs(t, err, ErrUnknownSagRod)
}

func TestSagRodUnmarshal(t *testing.T) {
	var v struct {
		SagRod SagRod `json:"sag_rod" yaml:"sag_rod"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"sag_rod": 3}`), &v))
	assert.Equal(t, SagRodThirdSpan, v.SagRod)
	require.NoError(t, json.Unmarshal([]byte(`{"sag_rod": "mid"}`), &v))
	assert.Equal(t, SagRodMidSpan, v.SagRod)
	assert.Error(t, json.Unmarshal([]byte(`{"sag_rod": "sideways"}`), &v))

	require.NoError(t, yaml.Unmarshal([]byte("sag_rod: none\n"), &v))
	assert.Equal(t, SagRodNone, v.SagRod)
	require.NoError(t, yaml.Unmarshal([]byte("sag_rod: 2\n"), &v))
	assert.Equal(t, SagRodMidSpan, v.SagRod)
}

func TestGoverningNormalLoad(t *testing.T) {
	gravity := decimal.NewFromInt(100)

	// Without wind the unfactored gravity case governs.
	w, combo := GoverningNormalLoad(gravity, decimal.Zero, LoadCombinations)
	assert.True(t, gravity.Equal(w))
	assert.Equal(t, "1", combo.ID)

	// Wind larger than a third of gravity makes the 0.75 case govern.
	w, combo = GoverningNormalLoad(gravity, decimal.NewFromInt(60), LoadCombinations)
	assert.True(t, decimal.NewFromInt(120).Equal(w), w.String())
	assert.Equal(t, "2", combo.ID)

	// Exactly a third is a tie and the first case is kept.
	w, combo = GoverningNormalLoad(decimal.NewFromInt(300), decimal.NewFromInt(100), LoadCombinations)
	assert.True(t, decimal.NewFromInt(300).Equal(w))
	assert.Equal(t, "1", combo.ID)
}
