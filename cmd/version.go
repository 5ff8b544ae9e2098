package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/gopurlin/internal/version"
	"github.com/spf13/cobra"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopurlin",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()
		if versionJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}
		fmt.Fprintln(out, info)
		fmt.Fprintln(out, "Steel Purlin Design Tool, Allowable Stress Design (Fb = 0.60 Fy)")
		if info.GoVersion != "" {
			fmt.Fprintf(out, "Built with %s\n", info.GoVersion)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print the build information as JSON")
}
