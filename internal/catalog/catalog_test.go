package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTables(t *testing.T) {
	want := []TableInfo{
		{Pile, "Pile Section", 37},
		{LightLipChannel, "Light Lip Channel Section", 15},
		{RectangularTube, "Rectangular Tube Section", 22},
		{LightChannel, "Light Channel Section", 17},
		{ISection, "I Section", 23},
		{WideFlange, "WF Section", 80},
	}
	assert.Equal(t, want, ListTables())
}

func TestRowNormalization(t *testing.T) {
	test := []struct {
		name  string
		table TableID
		index int
		want  Section
	}{
		{"pile shares modulus column", Pile, 1, Section{
			Table: Pile, Index: 1, Size: "21.7",
			WebThickness: 2.0, FlangeThickness: 2.0, Weight: 0.972, Area: 1.238,
			Ix: 0.607, Iy: 0.56, Zx: 0.56, Zy: 0.56, Rx: 0.7, Ry: 0.7,
		}},
		{"light lip channel single thickness", LightLipChannel, 1, Section{
			Table: LightLipChannel, Index: 1, Size: "60*30*10",
			WebThickness: 2.3, FlangeThickness: 2.3, Weight: 2.25, Area: 2.872,
			Ix: 15.6, Iy: 3.32, Zx: 5.2, Zy: 1.71, Rx: 2.33, Ry: 1.07,
		}},
		{"rectangular tube shifted columns", RectangularTube, 3, Section{
			Table: RectangularTube, Index: 3, Size: "50*25",
			WebThickness: 1.6, FlangeThickness: 1.6, Weight: 1.75, Area: 2.232,
			Ix: 7.02, Iy: 2.37, Zx: 2.81, Zy: 0.95, Rx: 1.77, Ry: 1.03,
		}},
		{"light channel web and flange", LightChannel, 2, Section{
			Table: LightChannel, Index: 2, Size: "100*50",
			WebThickness: 5.0, FlangeThickness: 7.5, Weight: 9.36, Area: 11.92,
			Ix: 189, Iy: 26.9, Zx: 37.8, Zy: 7.82, Rx: 3.98, Ry: 1.5,
		}},
		{"i section last row", ISection, 23, Section{
			Table: ISection, Index: 23, Size: "600*215",
			WebThickness: 21.6, FlangeThickness: 32.4, Weight: 199, Area: 254,
			Ix: 139000, Iy: 4670, Zx: 4630, Zy: 434, Rx: 23.4, Ry: 4.3,
		}},
		{"wide flange last row", WideFlange, 80, Section{
			Table: WideFlange, Index: 80, Size: "900*300",
			WebThickness: 18, FlangeThickness: 34, Weight: 286, Area: 364,
			Ix: 498000, Iy: 15700, Zx: 10900, Zy: 1040, Rx: 37, Ry: 6.56,
		}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Row(tt.table, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutWeightPrecedesArea(t *testing.T) {
	for _, info := range ListTables() {
		l, err := LayoutOf(info.ID)
		require.NoError(t, err)
		assert.Equal(t, l.Area-1, l.Weight, info.ID)
	}
}

func TestRowOutOfRange(t *testing.T) {
	for _, info := range ListTables() {
		for _, index := range []int{0, -1, info.RowCount + 1} {
			_, err := Row(info.ID, index)
			assert.ErrorIs(t, err, ErrOutOfRange, "%s[%d]", info.ID, index)
			assert.ErrorIs(t, err, ErrInvalidSection, "%s[%d]", info.ID, index)
		}
		_, err := Row(info.ID, info.RowCount)
		assert.NoError(t, err)
	}
}

func TestUnknownTable(t *testing.T) {
	_, err := Row("Z", 1)
	assert.True(t, errors.Is(err, ErrUnknownTable))
	assert.True(t, errors.Is(err, ErrInvalidSection))

	_, err = Lookup("angle")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestLookup(t *testing.T) {
	test := []struct {
		in   string
		want TableID
	}{
		{"WF", WideFlange},
		{"wf section", WideFlange},
		{"  I Section ", ISection},
		{"lightlipchannel", LightLipChannel},
		{"Rectangular Tube Section", RectangularTube},
	}
	for _, tt := range test {
		got, err := Lookup(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	// Display names work in place of ids.
	s, err := Row("Light Channel Section", 1)
	require.NoError(t, err)
	assert.Equal(t, LightChannel, s.Table)
}

func TestMinRadius(t *testing.T) {
	s, err := Row(WideFlange, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.12, s.MinRadius())

	p, err := Row(Pile, 5)
	require.NoError(t, err)
	assert.Equal(t, p.Rx, p.MinRadius())
}

func TestRowsReturnsCopy(t *testing.T) {
	rows, err := Rows(ISection)
	require.NoError(t, err)
	require.Len(t, rows, 23)
	rows[0].Zx = -1

	s, err := Row(ISection, 1)
	require.NoError(t, err)
	assert.Equal(t, 19.5, s.Zx)
}
