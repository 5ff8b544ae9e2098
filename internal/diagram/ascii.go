package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gopurlin/internal/asd"
	"github.com/alexiusacademia/gopurlin/internal/purlin"
)

// PurlinDiagramData holds data for drawing purlin load and check diagrams
type PurlinDiagramData struct {
	// Geometry
	Span   float64 // m
	Slope  float64 // degrees
	SagRod asd.SagRod

	// Loads (kg/m) and moments (kg-m)
	Load float64
	Wx   float64 // along the roof plane
	Wy   float64 // normal to the roof plane
	Mx   float64
	My   float64

	// Checks
	Section    string
	Stress     float64 // ksc
	Allowable  float64 // ksc
	Deflection float64 // cm
	Limit      float64 // cm
	Modulus    float64 // cm³
	Required   float64 // cm³
	Weight     float64 // section weight
	SelfWeight float64 // assumed self weight

	// Verdicts of the design checks
	BendingOK, DeflectionOK, ModulusOK, SelfWeightOK bool
}

// NewPurlinDiagramData collects the values a diagram needs from a design
func NewPurlinDiagramData(res *purlin.DesignResult) PurlinDiagramData {
	return PurlinDiagramData{
		Span:       res.Input.SpanLength,
		Slope:      res.Input.RoofSlope,
		SagRod:     res.Input.SagRod,
		Load:       res.Loads.LoadOnPurlin,
		Wx:         res.Loads.Wx,
		Wy:         res.Loads.Wy,
		Mx:         res.Loads.Mx,
		My:         res.Loads.My,
		Section:    fmt.Sprintf("%s %s", res.Section.Table, res.Section.Size),
		Stress:     res.Check.ActualStress,
		Allowable:  res.Loads.AllowableStress,
		Deflection: res.Check.ActualDeflection,
		Limit:      res.Loads.DeflectionLimit,
		Modulus:    res.Check.ActualModulus,
		Required:   res.Loads.RequiredModulus,
		Weight:     res.Section.Weight,
		SelfWeight: res.Input.SelfWeight,

		BendingOK:    res.Check.Bending.Pass,
		DeflectionOK: res.Check.Deflection.Pass,
		ModulusOK:    res.Check.Modulus.Pass,
		SelfWeightOK: res.Check.SelfWeight.Pass,
	}
}

// Utilization is one demand over capacity ratio and the verdict of its check
type Utilization struct {
	Name  string
	Ratio float64
	Pass  bool
}

// Utilizations returns the ratios of the four checks. Pass comes from the
// design verdict, so a self weight ratio above 1 still passes while another
// check fails.
func (d PurlinDiagramData) Utilizations() []Utilization {
	return []Utilization{
		{"Bending", ratio(d.Stress, d.Allowable), d.BendingOK},
		{"Deflection", ratio(d.Deflection, d.Limit), d.DeflectionOK},
		{"Modulus", ratio(d.Required, d.Modulus), d.ModulusOK},
		{"Self weight", ratio(d.Weight, d.SelfWeight), d.SelfWeightOK},
	}
}

func ratio(demand, capacity float64) float64 {
	if capacity <= 0 {
		if demand <= 0 {
			return 0
		}
		return math.Inf(1)
	}
	return demand / capacity
}

// DrawLoadDecomposition creates an ASCII sketch of the load on the sloped
// purlin split into its two components
func DrawLoadDecomposition(data PurlinDiagramData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  LOAD DECOMPOSITION\n")
	sb.WriteString("  ──────────────────\n\n")

	sb.WriteString(fmt.Sprintf("                  │ W = %.2f kg/m\n", data.Load))
	sb.WriteString("                  │\n")
	sb.WriteString("                  ▼\n")
	sb.WriteString("              ┌───────┐\n")
	sb.WriteString(fmt.Sprintf("   Wx ◄───────┤ [ ] ├──── roof at %.1f°\n", data.Slope))
	sb.WriteString("              └───┬───┘\n")
	sb.WriteString("                  │\n")
	sb.WriteString("                  ▼ Wy\n\n")

	sb.WriteString(fmt.Sprintf("  Wx = W·sin θ            = %.4f kg/m (weak axis)\n", data.Wx))
	sb.WriteString(fmt.Sprintf("  Wy = governing normal   = %.4f kg/m (strong axis)\n", data.Wy))
	sb.WriteString(fmt.Sprintf("  Mx = L²·Wy/8            = %.4f kg-m\n", data.Mx))
	sb.WriteString(fmt.Sprintf("  My = k·L²·Wx            = %.4f kg-m (%s)\n", data.My, data.SagRod.Description()))

	return sb.String()
}

// DrawMomentDiagram creates an ASCII strong axis moment diagram along the
// span with the sag rod positions marked
func DrawMomentDiagram(data PurlinDiagramData) string {
	var sb strings.Builder

	stations := 21
	width := 40

	sb.WriteString("\n")
	sb.WriteString("  STRONG AXIS MOMENT Mx\n")
	sb.WriteString("  ─────────────────────\n\n")

	rods := sagRodPositions(data.SagRod, data.Span)

	for i := 0; i < stations; i++ {
		x := data.Span * float64(i) / float64(stations-1)
		m := simpleSpanMoment(data.Wy, data.Span, x)

		barLen := 0
		if data.Mx > 0 {
			barLen = int(math.Round(m / data.Mx * float64(width)))
		}

		mark := "│"
		for _, r := range rods {
			if math.Abs(x-r) < data.Span/float64(2*(stations-1)) {
				mark = "┼"
			}
		}
		if i == 0 || i == stations-1 {
			mark = "△"
		}

		sb.WriteString(fmt.Sprintf("  %6.2f m %s%s", x, mark, strings.Repeat("█", barLen)))
		if i == stations/2 {
			sb.WriteString(fmt.Sprintf(" Mx = %.2f kg-m", data.Mx))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  △ = support")
	if len(rods) > 0 {
		sb.WriteString("   ┼ = sag rod")
	}
	sb.WriteString("\n")

	return sb.String()
}

// DrawUtilization creates ASCII bars of each check's demand over capacity
func DrawUtilization(data PurlinDiagramData) string {
	var sb strings.Builder

	width := 30 // characters at a ratio of 1.0

	sb.WriteString("\n")
	sb.WriteString("  UTILIZATION\n")
	sb.WriteString("  ───────────\n\n")

	for _, u := range data.Utilizations() {
		barLen := width * 3 / 2
		if !math.IsInf(u.Ratio, 0) {
			barLen = max(0, min(int(math.Round(u.Ratio*float64(width))), width*3/2))
		}

		bar := strings.Repeat("█", barLen) + strings.Repeat(" ", width*3/2-barLen)
		// capacity marker at 1.0
		runes := []rune(bar)
		if runes[width] == ' ' {
			runes[width] = '┆'
		}

		status := "OK"
		if !u.Pass {
			status = "OVER"
		}
		sb.WriteString(fmt.Sprintf("  %-11s │%s│ %6.2f %s\n", u.Name, string(runes), u.Ratio, status))
	}

	sb.WriteString(fmt.Sprintf("\n  ┆ = capacity (ratio 1.00)   section %s\n", data.Section))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad fills s with spaces to n runes
func pad(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}

// sagRodPositions returns the distances (m) of the sag rods from the left support
func sagRodPositions(rod asd.SagRod, span float64) []float64 {
	switch rod {
	case asd.SagRodMidSpan:
		return []float64{span / 2}
	case asd.SagRodThirdSpan:
		return []float64{span / 3, 2 * span / 3}
	}
	return nil
}

// simpleSpanMoment is the moment at x of a simply supported span under uniform load w
func simpleSpanMoment(w, span, x float64) float64 {
	return w * x * (span - x) / 2
}
