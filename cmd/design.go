package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopurlin/internal/asd"
	"github.com/alexiusacademia/gopurlin/internal/catalog"
	"github.com/alexiusacademia/gopurlin/internal/config"
	"github.com/alexiusacademia/gopurlin/internal/diagram"
	"github.com/alexiusacademia/gopurlin/internal/logger"
	"github.com/alexiusacademia/gopurlin/internal/purlin"
	"github.com/alexiusacademia/gopurlin/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Design data
	designSagRod     string
	designSpan       float64
	designSpacing    float64
	designSlope      float64
	designTile       float64
	designLive       float64
	designWind       float64
	designSelfWeight float64

	// Steel properties
	designE     float64
	designFy    float64
	designRatio int

	// Trial section
	designTable string
	designRow   int

	// Design file
	designFile string
	designSave string

	// Output options
	designShowDiagram bool
	designExportFile  string
	designChartFile   string
	designPDFFile     string
	designProject     string
	designAuthor      string
	designJSON        bool
)

const rule = "───────────────────────────────────────────────────────────────"

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Check a trial purlin section under roof loads",
	Long: `Resolve the roof loads on a purlin, compute the biaxial moments and
check a trial section from the steel catalog for bending stress,
deflection, section modulus and self weight.

Loads:
  W  = (tile + live) x spacing + self weight
  Wx = W sin θ, Wy = max(W cos θ, 0.75(W cos θ + r x spacing))
  r  = 2 wind sin θ / (1 + sin² θ) for slopes above 18°

Examples:
  # 6 m span, 1.5 m spacing, 20° roof, sag rod at mid span
  gopurlin design --span 6 --spacing 1.5 --slope 20 --tile 10 --self-weight 12 \
    --sag-rod mid --ratio 200 --table LightLipChannel --row 14

  # Start from a YAML design file and override the trial row
  gopurlin design -f purlin.yaml --row 15 --diagram

  # Export the moment diagram and a calculation sheet
  gopurlin design -f purlin.yaml -o moments.png --pdf purlin.pdf`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	f := designCmd.Flags()
	addInputFlags(f, true)

	f.StringVar(&designSave, "save", "", "Save the resolved design as a YAML file")

	// Output flags
	f.BoolVar(&designShowDiagram, "diagram", false, "Show ASCII load and moment diagrams")
	f.StringVarP(&designExportFile, "output", "o", "", "Export moment diagram to file (png, svg, pdf)")
	f.StringVar(&designChartFile, "chart", "", "Export utilization chart to file (png, svg, pdf)")
	f.StringVar(&designPDFFile, "pdf", "", "Write a PDF calculation sheet")
	f.StringVar(&designProject, "project", "", "Project name for the calculation sheet")
	f.StringVar(&designAuthor, "author", "", "Designer name for the calculation sheet")
	f.BoolVar(&designJSON, "json", false, "Print the result as JSON")
}

// addInputFlags registers the design input flags. The loads and design
// commands share the flag variables.
func addInputFlags(f *pflag.FlagSet, withSection bool) {
	def := purlin.DefaultInput()

	// Design data flags
	f.StringVarP(&designSagRod, "sag-rod", "s", def.SagRod.String(), "Sag rods: none, mid or third")
	f.Float64VarP(&designSpan, "span", "l", 0, "Span length L (m) [required]")
	f.Float64Var(&designSpacing, "spacing", 0, "Purlin spacing (m) [required]")
	f.Float64Var(&designSlope, "slope", 0, "Roof slope θ (degrees)")
	f.Float64Var(&designTile, "tile", 0, "Roofing weight (kg/m²)")
	f.Float64Var(&designLive, "live", def.LiveLoad, "Live load (kg/m²)")
	f.Float64Var(&designWind, "wind", def.WindLoad, "Wind load (kg/m²)")
	f.Float64Var(&designSelfWeight, "self-weight", 0, "Assumed purlin self weight (kg/m)")

	// Steel property flags
	f.Float64Var(&designE, "modulus", def.ElasticModulus, "Modulus of elasticity E (ksc)")
	f.Float64Var(&designFy, "fy", def.YieldStrength, "Steel yield strength Fy (ksc)")
	f.IntVar(&designRatio, "ratio", def.DeflectionRatio, "Deflection limit n in L/n")

	if withSection {
		f.StringVarP(&designTable, "table", "t", string(def.Table), "Section table (see 'gopurlin sections list')")
		f.IntVarP(&designRow, "row", "r", def.Row, "Section row within the table (1-based)")
	}

	f.StringVarP(&designFile, "file", "f", "", "Read the design from a YAML file (flags override it)")
}

// designInput builds the input from the design file and the flags. Without
// a file every flag applies, otherwise only the flags given explicitly.
func designInput(cmd *cobra.Command) (purlin.Input, error) {
	in := purlin.DefaultInput()
	fromFile := designFile != ""
	if fromFile {
		var err error
		if in, err = config.LoadDesign(designFile); err != nil {
			return purlin.Input{}, err
		}
	}

	flags := cmd.Flags()
	use := func(name string) bool {
		return !fromFile || flags.Changed(name)
	}

	if use("sag-rod") {
		rod, err := asd.ParseSagRod(designSagRod)
		if err != nil {
			return purlin.Input{}, err
		}
		in.SagRod = rod
	}
	floats := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"span", designSpan, &in.SpanLength},
		{"spacing", designSpacing, &in.PurlinSpacing},
		{"slope", designSlope, &in.RoofSlope},
		{"tile", designTile, &in.TileWeight},
		{"live", designLive, &in.LiveLoad},
		{"wind", designWind, &in.WindLoad},
		{"self-weight", designSelfWeight, &in.SelfWeight},
		{"modulus", designE, &in.ElasticModulus},
		{"fy", designFy, &in.YieldStrength},
	}
	for _, fl := range floats {
		if use(fl.name) {
			*fl.dst = fl.src
		}
	}
	if use("ratio") {
		in.DeflectionRatio = designRatio
	}
	if flags.Lookup("table") != nil && use("table") {
		in.Table = catalog.TableID(designTable)
	}
	if flags.Lookup("row") != nil && use("row") {
		in.Row = designRow
	}
	return in, nil
}

func runDesign(cmd *cobra.Command, args []string) error {
	in, err := designInput(cmd)
	if err != nil {
		return err
	}

	p, err := purlin.New(in)
	if err != nil {
		return err
	}
	res, err := p.Design()
	if err != nil {
		return err
	}
	logger.Debug("design evaluated", "table", res.Section.Table, "row", res.Section.Index, "adequate", res.Check.Adequate())

	if designSave != "" {
		if err := config.WriteDesign(designSave, in); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	// status messages must not mix with JSON on stdout
	msg := out
	if designJSON {
		msg = cmd.ErrOrStderr()
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printDesign(out, res)
	}

	data := diagram.NewPurlinDiagramData(res)

	if designShowDiagram && !designJSON {
		fmt.Fprintln(out, diagram.DrawLoadDecomposition(data))
		fmt.Fprintln(out, diagram.DrawMomentDiagram(data))
		fmt.Fprintln(out, diagram.DrawUtilization(data))
	}

	if designExportFile != "" {
		if err := diagram.ExportMomentDiagram(data, designExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(msg, "Diagram exported to: %s\n", designExportFile)
	}

	if designChartFile != "" {
		if err := diagram.ExportUtilizationChart(data, designChartFile); err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Fprintf(msg, "Chart exported to: %s\n", designChartFile)
	}

	if designPDFFile != "" {
		if err := writeReport(designPDFFile, res); err != nil {
			return err
		}
		fmt.Fprintf(msg, "Calculation sheet written to: %s\n", designPDFFile)
	}
	return nil
}

func writeReport(path string, res *purlin.DesignResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	meta := report.Meta{Project: designProject, Author: designAuthor, Diagram: true}
	if err := report.WritePDF(f, res, meta); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}

func printDesign(out io.Writer, res *purlin.DesignResult) {
	in := res.Input
	l := res.Loads
	sec := res.Section
	c := res.Check

	tableName := string(sec.Table)
	if info, err := catalog.Info(sec.Table); err == nil {
		tableName = info.Name
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     STEEL PURLIN DESIGN - ALLOWABLE STRESS DESIGN")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "DESIGN DATA:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span Length (L):\t%.2f m\n", in.SpanLength)
	fmt.Fprintf(w, "  Purlin Spacing:\t%.2f m\n", in.PurlinSpacing)
	fmt.Fprintf(w, "  Roof Slope (θ):\t%.2f°\n", in.RoofSlope)
	fmt.Fprintf(w, "  Sag Rods:\t%s\n", in.SagRod.Description())
	fmt.Fprintf(w, "  Roofing Weight:\t%.2f kg/m²\n", in.TileWeight)
	fmt.Fprintf(w, "  Live Load:\t%.2f kg/m²\n", in.LiveLoad)
	fmt.Fprintf(w, "  Wind Load:\t%.2f kg/m²\n", in.WindLoad)
	fmt.Fprintf(w, "  Assumed Self Weight:\t%.2f kg/m\n", in.SelfWeight)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STEEL PROPERTIES:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade:\t%s\n", res.Grade.Name)
	fmt.Fprintf(w, "  E:\t%.0f ksc\n", in.ElasticModulus)
	fmt.Fprintf(w, "  Fy:\t%.0f ksc\n", in.YieldStrength)
	fmt.Fprintf(w, "  Fb = 0.60 Fy:\t%.2f ksc\n", l.AllowableStress)
	fmt.Fprintf(w, "  Deflection Limit (L/%d):\t%.2f cm\n", in.DeflectionRatio, l.DeflectionLimit)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOADS AND MOMENTS:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load on Purlin (W):\t%.2f kg/m\n", l.LoadOnPurlin)
	fmt.Fprintf(w, "  Wind Factor (r):\t%.4f\n", l.WindFactor)
	fmt.Fprintf(w, "  Wx = W sin θ:\t%.2f kg/m\n", l.Wx)
	fmt.Fprintf(w, "  Wy [%s]:\t%.2f kg/m\n", l.Combination.Description, l.Wy)
	fmt.Fprintf(w, "  Mx = Wy L²/8:\t%.2f kg-m\n", l.Mx)
	fmt.Fprintf(w, "  My = k Wx L² (k = %.5f):\t%.2f kg-m\n", l.SagRodCoeff, l.My)
	fmt.Fprintf(w, "  Required Modulus:\t%.2f cm³\n", l.RequiredModulus)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "TRIAL SECTION:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Table:\t%s\n", tableName)
	fmt.Fprintf(w, "  Size:\t%s (row %d)\n", sec.Size, sec.Index)
	fmt.Fprintf(w, "  Weight:\t%.2f kg/m\n", sec.Weight)
	fmt.Fprintf(w, "  Ix / Iy:\t%.2f / %.2f cm⁴\n", sec.Ix, sec.Iy)
	fmt.Fprintf(w, "  Zx / Zy:\t%.2f / %.2f cm³\n", sec.Zx, sec.Zy)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "CHECKS:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tActual\tLimit\tResult\n")
	fmt.Fprintf(w, "  ─────\t──────\t─────\t──────\n")
	fmt.Fprintf(w, "  Bending stress\t%.2f ksc\t%.2f ksc\t%s\n", c.ActualStress, l.AllowableStress, c.Bending.Message)
	fmt.Fprintf(w, "  Deflection\t%.3f cm\t%.2f cm\t%s\n", c.ActualDeflection, l.DeflectionLimit, c.Deflection.Message)
	fmt.Fprintf(w, "  Section modulus\t%.2f cm³\t%.2f cm³\t%s\n", c.ActualModulus, l.RequiredModulus, c.Modulus.Message)
	fmt.Fprintf(w, "  Self weight\t%.2f kg/m\t%.2f kg/m\t%s\n", sec.Weight, in.SelfWeight, c.SelfWeight.Message)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "DESIGN RESULT:")
	fmt.Fprintln(out, rule)
	title := "SECTION ADEQUATE"
	if !c.Adequate() {
		title = "SECTION NOT ADEQUATE"
	}
	fmt.Fprint(out, diagram.DrawSummaryBox(title, []string{
		fmt.Sprintf("%s %s", tableName, sec.Size),
		fmt.Sprintf("Bending     %s", c.Bending.Message),
		fmt.Sprintf("Deflection  %s", c.Deflection.Message),
		fmt.Sprintf("Modulus     %s", c.Modulus.Message),
		fmt.Sprintf("Self weight %s", c.SelfWeight.Message),
	}))
	fmt.Fprintln(out)
}
