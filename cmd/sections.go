package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gopurlin/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	sectionsTable string
	sectionsRow   int
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Browse the steel section catalog",
	Long: `Browse the built-in steel section tables used as trial sections.

Subcommands:
  list  - List the section tables with their row counts
  show  - Show the rows of a table or a single section

Tables may be named by id (WF) or by name ("WF Section").`,
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the section tables",
	Run:   runSectionsList,
}

var sectionsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the sections of a table",
	Long: `Show every section of a table, or one section in full with --row.

Examples:
  gopurlin sections show --table LightLipChannel
  gopurlin sections show -t "WF Section" -r 12`,
	RunE: runSectionsShow,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	sectionsCmd.AddCommand(sectionsListCmd)
	sectionsCmd.AddCommand(sectionsShowCmd)

	sectionsShowCmd.Flags().StringVarP(&sectionsTable, "table", "t", "", "Section table id or name [required]")
	sectionsShowCmd.Flags().IntVarP(&sectionsRow, "row", "r", 0, "Show a single row (1-based)")
	sectionsShowCmd.MarkFlagRequired("table")
}

func runSectionsList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "SECTION TABLES:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tName\tRows\n")
	fmt.Fprintf(w, "  ──\t────\t────\n")
	for _, t := range catalog.ListTables() {
		fmt.Fprintf(w, "  %s\t%s\t%d\n", t.ID, t.Name, t.RowCount)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func runSectionsShow(cmd *cobra.Command, args []string) error {
	id, err := catalog.Lookup(sectionsTable)
	if err != nil {
		return err
	}
	info, err := catalog.Info(id)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if sectionsRow != 0 {
		sec, err := catalog.Row(id, sectionsRow)
		if err != nil {
			return err
		}
		printSection(out, info, sec)
		return nil
	}

	rows, err := catalog.Rows(id)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", info.Name)
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Row\tSize\tWeight\tIx\tIy\tZx\tZy\t\n")
	for _, s := range rows {
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n", s.Index, s.Size, s.Weight, s.Ix, s.Iy, s.Zx, s.Zy)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Weight in kg/m, I in cm⁴, Z in cm³")
	fmt.Fprintln(out)
	return nil
}

func printSection(out io.Writer, info catalog.TableInfo, s catalog.Section) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s, row %d of %d:\n", info.Name, s.Index, info.RowCount)
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Size:\t%s\n", s.Size)
	fmt.Fprintf(w, "  Web Thickness:\t%.2f mm\n", s.WebThickness)
	fmt.Fprintf(w, "  Flange Thickness:\t%.2f mm\n", s.FlangeThickness)
	fmt.Fprintf(w, "  Weight:\t%.2f kg/m\n", s.Weight)
	fmt.Fprintf(w, "  Area:\t%.2f cm²\n", s.Area)
	fmt.Fprintf(w, "  Ix:\t%.2f cm⁴\n", s.Ix)
	fmt.Fprintf(w, "  Iy:\t%.2f cm⁴\n", s.Iy)
	fmt.Fprintf(w, "  Zx:\t%.2f cm³\n", s.Zx)
	fmt.Fprintf(w, "  Zy:\t%.2f cm³\n", s.Zy)
	fmt.Fprintf(w, "  rx:\t%.2f cm\n", s.Rx)
	fmt.Fprintf(w, "  ry:\t%.2f cm\n", s.Ry)
	fmt.Fprintf(w, "  r min:\t%.2f cm\n", s.MinRadius())
	w.Flush()
	fmt.Fprintln(out)
}
