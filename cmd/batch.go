package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopurlin/internal/batch"
	"github.com/alexiusacademia/gopurlin/internal/logger"
	"github.com/spf13/cobra"
)

var (
	batchIn       string
	batchOut      string
	batchTemplate string
	batchWorkers  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Design every purlin listed in an Excel workbook",
	Long: `Read purlin designs from the first sheet of an Excel workbook, check
them concurrently and write a results workbook.

The first row is a header. Columns, in order:
  sag_rod, span_length, purlin_spacing, roof_slope, tile_weight,
  live_load, wind_load, self_weight, elastic_modulus, yield_strength,
  deflection_ratio, table, row

Blank cells take the default values. Rows that cannot be read or
designed are reported with their error and do not stop the batch.

Examples:
  # Write a starting workbook
  gopurlin batch --template designs.xlsx

  # Run the designs
  gopurlin batch --in designs.xlsx --out results.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchIn, "in", "i", "", "Input workbook (.xlsx)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Results workbook (.xlsx)")
	batchCmd.Flags().StringVar(&batchTemplate, "template", "", "Write an input template workbook and exit")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent designs (defaults to the CPU count)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if batchTemplate != "" {
		f, err := os.Create(batchTemplate)
		if err != nil {
			return err
		}
		if err := batch.WriteTemplate(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Template written to: %s\n", batchTemplate)
		return nil
	}

	if batchIn == "" || batchOut == "" {
		return errors.New("both --in and --out are required")
	}

	src, err := os.Open(batchIn)
	if err != nil {
		return err
	}
	rows, err := batch.ReadWorkbook(src)
	src.Close()
	if err != nil {
		return err
	}

	logger.Debug("batch started", "file", batchIn, "rows", len(rows), "workers", batchWorkers)
	inputs, res, err := batch.RunRows(cmd.Context(), rows, batchWorkers)
	if err != nil {
		return err
	}

	dst, err := os.Create(batchOut)
	if err != nil {
		return err
	}
	if err := batch.WriteWorkbook(dst, inputs, res); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "BATCH RESULTS:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Line\tSection\tResult\n")
	fmt.Fprintf(w, "  ────\t───────\t──────\n")
	for i, it := range res.Items {
		switch {
		case it.Result == nil:
			fmt.Fprintf(w, "  %d\t-\t%s\n", rows[i].Line, it.Error)
		case it.Result.Check.Adequate():
			fmt.Fprintf(w, "  %d\t%s\tADEQUATE\n", rows[i].Line, it.Result.Section.Size)
		default:
			fmt.Fprintf(w, "  %d\t%s\tNOT ADEQUATE\n", rows[i].Line, it.Result.Section.Size)
		}
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %d adequate, %d not adequate, %d errors\n", res.Adequate, res.Failing, res.Errors)
	fmt.Fprintf(out, "  Results written to: %s\n", batchOut)
	fmt.Fprintln(out)
	return nil
}
