package diagram

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"

	"github.com/alexiusacademia/gopurlin/internal/asd"
	"github.com/alexiusacademia/gopurlin/internal/catalog"
	"github.com/alexiusacademia/gopurlin/internal/purlin"
)

func sampleData(t *testing.T, rod asd.SagRod) PurlinDiagramData {
	t.Helper()

	in := purlin.DefaultInput()
	in.SagRod = rod
	in.SpanLength = 6
	in.PurlinSpacing = 1.5
	in.RoofSlope = 20
	in.TileWeight = 10
	in.SelfWeight = 5
	in.DeflectionRatio = 200
	in.Table = catalog.LightLipChannel
	in.Row = 11

	res, err := purlin.Design(in)
	require.NoError(t, err)
	return NewPurlinDiagramData(res)
}

func TestNewPurlinDiagramData(t *testing.T) {
	data := sampleData(t, asd.SagRodMidSpan)
	assert.Equal(t, 6.0, data.Span)
	assert.InDelta(t, 65.0, data.Load, 1e-9)
	assert.Equal(t, "LightLipChannel 150*75*20", data.Section)
	assert.Equal(t, 8.01, data.Weight)
}

func TestUtilizations(t *testing.T) {
	data := sampleData(t, asd.SagRodMidSpan)
	utils := data.Utilizations()
	require.Len(t, utils, 4)

	assert.Equal(t, "Bending", utils[0].Name)
	assert.InDelta(t, 775.231848/1440, utils[0].Ratio, 1e-6)
	assert.InDelta(t, 1.5025/3.0, utils[1].Ratio, 1e-5)
	assert.Less(t, utils[2].Ratio, 1.0)
	assert.InDelta(t, 8.01/5, utils[3].Ratio, 1e-9)

	// row 11 passes every check but the assumed self weight
	assert.True(t, utils[0].Pass)
	assert.True(t, utils[1].Pass)
	assert.True(t, utils[2].Pass)
	assert.False(t, utils[3].Pass)

	data.SelfWeight = 0
	assert.True(t, math.IsInf(data.Utilizations()[3].Ratio, 1))
}

func TestUtilizationsFollowVerdicts(t *testing.T) {
	// a heavy roof fails bending, so the light assumed self weight is not flagged
	in := purlin.DefaultInput()
	in.SagRod = asd.SagRodMidSpan
	in.SpanLength = 6
	in.PurlinSpacing = 1.5
	in.RoofSlope = 20
	in.TileWeight = 100
	in.SelfWeight = 5
	in.Table = catalog.LightLipChannel
	in.Row = 11

	res, err := purlin.Design(in)
	require.NoError(t, err)
	require.False(t, res.Check.Bending.Pass)
	require.True(t, res.Check.SelfWeight.Pass)

	data := NewPurlinDiagramData(res)
	weight := data.Utilizations()[3]
	assert.Greater(t, weight.Ratio, 1.0)
	assert.True(t, weight.Pass)

	var bending, selfWeight string
	for _, l := range strings.Split(DrawUtilization(data), "\n") {
		if strings.Contains(l, "Bending") {
			bending = l
		}
		if strings.Contains(l, "Self weight") {
			selfWeight = l
		}
	}
	assert.True(t, strings.HasSuffix(bending, "OVER"), bending)
	assert.True(t, strings.HasSuffix(selfWeight, "OK"), selfWeight)
}

func TestDrawLoadDecomposition(t *testing.T) {
	out := DrawLoadDecomposition(sampleData(t, asd.SagRodThirdSpan))
	assert.Contains(t, out, "LOAD DECOMPOSITION")
	assert.Contains(t, out, "W = 65.00 kg/m")
	assert.Contains(t, out, "Sag rods at L/3 of span")
}

func TestDrawMomentDiagram(t *testing.T) {
	out := DrawMomentDiagram(sampleData(t, asd.SagRodMidSpan))
	assert.Contains(t, out, "Mx = 299.15 kg-m")
	assert.Contains(t, out, "┼")
	assert.Contains(t, out, "sag rod")

	out = DrawMomentDiagram(sampleData(t, asd.SagRodNone))
	assert.NotContains(t, out, "┼")
}

func TestDrawUtilization(t *testing.T) {
	data := sampleData(t, asd.SagRodMidSpan)
	out := DrawUtilization(data)

	lines := strings.Split(out, "\n")
	var bending, weight string
	for _, l := range lines {
		if strings.Contains(l, "Bending") {
			bending = l
		}
		if strings.Contains(l, "Self weight") {
			weight = l
		}
	}
	assert.True(t, strings.HasSuffix(bending, "OK"), bending)
	assert.True(t, strings.HasSuffix(weight, "OVER"), weight)

	data.SelfWeight = 0
	assert.NotPanics(t, func() { DrawUtilization(data) })
}

func TestDrawSummaryBox(t *testing.T) {
	lines := []string{"Mx = 1.00", "σ ≤ Fb"}
	out := DrawSummaryBox("RESULT", lines)
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, title, separator, lines, bottom border
	require.Len(t, rows, len(lines)+4)
	assert.Contains(t, rows[1], "RESULT")
	assert.Contains(t, rows[2], "╠")
	assert.Contains(t, rows[4], "σ ≤ Fb")

	width := len([]rune(rows[0]))
	for _, r := range rows {
		assert.Equal(t, width, len([]rune(r)), r)
	}
}

func TestWeakAxisMoments(t *testing.T) {
	w, span := 22.0, 6.0

	peak := func(pts []float64) float64 {
		m := 0.0
		for _, v := range pts {
			m = max(m, math.Abs(v))
		}
		return m
	}
	ys := func(rod asd.SagRod) []float64 {
		var out []float64
		for _, p := range weakAxisMoments(rod, w, span) {
			out = append(out, p.Y)
		}
		return out
	}

	// Simple span peak wL²/8, two span support moment wL²/32
	assert.InDelta(t, w*span*span/8, peak(ys(asd.SagRodNone)), 1e-9)
	assert.InDelta(t, w*span*span/32, peak(ys(asd.SagRodMidSpan)), 1e-9)
	assert.InDelta(t, w*span*span/90, peak(ys(asd.SagRodThirdSpan)), 1e-9)

	pts := weakAxisMoments(asd.SagRodThirdSpan, w, span)
	assert.InDelta(t, 0, pts[0].Y, 1e-12)
	assert.InDelta(t, 0, pts[len(pts)-1].Y, 1e-9)
}

func TestExportMomentDiagram(t *testing.T) {
	dir := t.TempDir()
	data := sampleData(t, asd.SagRodMidSpan)

	for _, name := range []string{"moment.png", "moment.svg", filepath.Join("nested", "moment.pdf")} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportMomentDiagram(data, path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	// Unknown extensions fall back to PNG
	require.NoError(t, ExportMomentDiagram(data, filepath.Join(dir, "moment")))
	_, err := os.Stat(filepath.Join(dir, "moment.png"))
	assert.NoError(t, err)

	data.Span = 0
	assert.Error(t, ExportMomentDiagram(data, filepath.Join(dir, "bad.png")))
}

func TestUtilizationValues(t *testing.T) {
	values, top := utilizationValues([]Utilization{
		{Name: "Bending", Ratio: 0.5},
		{Name: "Deflection", Ratio: 1.5},
		{Name: "Self weight", Ratio: math.Inf(1)},
		{Name: "Modulus", Ratio: math.NaN()},
	})
	assert.InDelta(t, 1.8, top, 1e-12)
	assert.Equal(t, plotter.Values{0.5, 1.5, top, 0}, values)

	_, top = utilizationValues([]Utilization{{Name: "Bending", Ratio: 0.2}})
	assert.InDelta(t, 1.2, top, 1e-12)
}

func TestExportUtilizationChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "util.png")
	data := sampleData(t, asd.SagRodNone)
	data.SelfWeight = 0

	require.NoError(t, ExportUtilizationChart(data, path))

	head := make([]byte, 8)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", string(head))
}

func TestWriteMomentDiagram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMomentDiagram(&buf, sampleData(t, asd.SagRodThirdSpan), "svg"))
	assert.Contains(t, buf.String(), "<svg")

	assert.Error(t, WriteMomentDiagram(&buf, sampleData(t, asd.SagRodNone), "bmp"))
}
