package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gopurlin/internal/diagram"
	"github.com/alexiusacademia/gopurlin/internal/purlin"
	"github.com/spf13/cobra"
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Resolve purlin loads and moments for every load combination",
	Long: `Resolve the roof loads on a purlin without a trial section and show
the normal load and strong axis moment of every load combination.

Load combinations:
  1  D + L
  2  0.75(D + L + W)   wind only acts on slopes above 18°

Examples:
  # Loads on a steep roof
  gopurlin loads --span 6 --spacing 1.5 --slope 25 --tile 10 --wind 120

  # From a design file
  gopurlin loads -f purlin.yaml`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)
	addInputFlags(loadsCmd.Flags(), false)
}

func runLoads(cmd *cobra.Command, args []string) error {
	in, err := designInput(cmd)
	if err != nil {
		return err
	}
	p, err := purlin.New(in)
	if err != nil {
		return err
	}
	l := p.Loads()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          PURLIN LOADS AND MOMENTS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOADS:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load on Purlin (W):\t%.2f kg/m\n", l.LoadOnPurlin)
	fmt.Fprintf(w, "  Wind Factor (r):\t%.4f\n", l.WindFactor)
	fmt.Fprintf(w, "  Wx = W sin θ:\t%.2f kg/m\n", l.Wx)
	fmt.Fprintf(w, "  My = k Wx L² (k = %.5f):\t%.2f kg-m\n", l.SagRodCoeff, l.My)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOAD COMBINATIONS:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tWy (kg/m)\tMx (kg-m)\n")
	fmt.Fprintf(w, "  ─\t───────────\t─────────\t─────────\n")
	for _, c := range p.Combinations() {
		marker := ""
		if c.Governs {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n", c.Combination.ID, c.Combination.Description, c.Wy, c.Mx, marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", l.Combination.ID, l.Combination.Description)
	fmt.Fprintf(out, "  Allowable Stress Fb: %.2f ksc\n", l.AllowableStress)
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox("REQUIRED MODULUS", []string{
		fmt.Sprintf("S = 100 max(Mx, My) / Fb = %.2f cm³", l.RequiredModulus),
		fmt.Sprintf("Mx = %.2f kg-m, My = %.2f kg-m", l.Mx, l.My),
	}))
	fmt.Fprintln(out)
	return nil
}
