package diagram

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gopurlin/internal/asd"
)

const samples = 121

// ExportMomentDiagram exports the strong and weak axis moment diagrams
// along the span to an image file (.png, .svg or .pdf)
func ExportMomentDiagram(data PurlinDiagramData, filename string) error {
	p, err := momentPlot(data)
	if err != nil {
		return err
	}
	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// WriteMomentDiagram renders the moment diagram in the given format
// ("png", "svg", "pdf") to w
func WriteMomentDiagram(w io.Writer, data PurlinDiagramData, format string) error {
	p, err := momentPlot(data)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func momentPlot(data PurlinDiagramData) (*plot.Plot, error) {
	if data.Span <= 0 {
		return nil, fmt.Errorf("span must be positive, got %g", data.Span)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Purlin Moments (%s)", data.SagRod.Description())
	p.X.Label.Text = "Distance along span (m)"
	p.Y.Label.Text = "Moment (kg-m)"
	p.Legend.Top = true

	// Strong axis, simple span under Wy
	mxPts := make(plotter.XYs, samples)
	for i := range mxPts {
		x := data.Span * float64(i) / float64(samples-1)
		mxPts[i] = plotter.XY{X: x, Y: simpleSpanMoment(data.Wy, data.Span, x)}
	}
	mxLine, err := plotter.NewLine(mxPts)
	if err != nil {
		return nil, err
	}
	mxLine.LineStyle.Width = vg.Points(2)
	mxLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(mxLine)
	p.Legend.Add("Mx (strong axis)", mxLine)

	// Weak axis, continuous over the sag rods under Wx
	myLine, err := plotter.NewLine(weakAxisMoments(data.SagRod, data.Wx, data.Span))
	if err != nil {
		return nil, err
	}
	myLine.LineStyle.Width = vg.Points(2)
	myLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	myLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(myLine)
	p.Legend.Add("My (weak axis)", myLine)

	// Baseline
	zeroLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: data.Span, Y: 0}})
	if err != nil {
		return nil, err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	p.Add(zeroLine)

	// Supports and sag rods
	supports := plotter.XYs{{X: 0, Y: 0}, {X: data.Span, Y: 0}}
	for _, x := range sagRodPositions(data.SagRod, data.Span) {
		supports = append(supports, plotter.XY{X: x, Y: 0})
	}
	supportPts, err := plotter.NewScatter(supports)
	if err != nil {
		return nil, err
	}
	supportPts.GlyphStyle.Color = color.Black
	supportPts.GlyphStyle.Radius = vg.Points(5)
	supportPts.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(supportPts)

	// Annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{data.Span / 2, data.Mx, fmt.Sprintf("Mx=%.2f", data.Mx)},
		{data.Span / 2, -data.My, fmt.Sprintf("My=%.2f", data.My)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	return p, nil
}

// ExportUtilizationChart exports a bar chart of the check ratios
func ExportUtilizationChart(data PurlinDiagramData, filename string) error {
	utils := data.Utilizations()
	values, top := utilizationValues(utils)

	names := make([]string, len(utils))
	for i, u := range utils {
		names[i] = u.Name
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Utilization: %s", data.Section)
	p.Y.Label.Text = "Demand / capacity"
	p.Y.Min = 0
	p.Y.Max = top

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	bars.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(bars)
	p.NominalX(names...)

	capacity, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 1},
		{X: float64(len(utils)) - 0.5, Y: 1},
	})
	if err != nil {
		return err
	}
	capacity.LineStyle.Width = vg.Points(1.5)
	capacity.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	capacity.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(capacity)

	return save(p, 6*vg.Inch, 4*vg.Inch, filename)
}

// utilizationValues returns the bar heights and the top of the axis. An
// unbounded ratio (zero capacity) is drawn at the top of the axis.
func utilizationValues(utils []Utilization) (plotter.Values, float64) {
	top := 1.0
	for _, u := range utils {
		if !math.IsInf(u.Ratio, 0) && !math.IsNaN(u.Ratio) {
			top = max(top, u.Ratio)
		}
	}
	top *= 1.2

	values := make(plotter.Values, len(utils))
	for i, u := range utils {
		switch {
		case math.IsNaN(u.Ratio):
			values[i] = 0
		case math.IsInf(u.Ratio, 0):
			values[i] = top
		default:
			values[i] = u.Ratio
		}
	}
	return values, top
}

// weakAxisMoments samples the weak axis moment of a purlin braced by sag rods.
// Spans between sag rods act as a continuous beam with the interior support
// moments of equal span tables.
func weakAxisMoments(rod asd.SagRod, w, span float64) plotter.XYs {
	var n int
	var support []float64 // moment coefficients × w·l² at each support
	switch rod {
	case asd.SagRodMidSpan:
		n, support = 2, []float64{0, -0.125, 0}
	case asd.SagRodThirdSpan:
		n, support = 3, []float64{0, -0.1, -0.1, 0}
	default:
		n, support = 1, []float64{0, 0}
	}

	l := span / float64(n)
	pts := make(plotter.XYs, samples)
	for i := range pts {
		x := span * float64(i) / float64(samples-1)
		j := min(int(x/l), n-1)
		xi := x - float64(j)*l

		left := support[j] * w * l * l
		right := support[j+1] * w * l * l
		m := simpleSpanMoment(w, l, xi) + left*(1-xi/l) + right*xi/l
		pts[i] = plotter.XY{X: x, Y: m}
	}
	return pts
}

// save writes the plot in the format given by the file extension,
// defaulting to PNG
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
