package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gopurlin/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gopurlin",
	Short: "Steel Purlin Design Tool",
	Long: `gopurlin - Go Steel Purlin Designer

A CLI tool for the design of cold-formed and hot-rolled steel roof
purlins by allowable stress design.

This tool helps structural engineers perform:
  - Load resolution on sloped roofs (dead, live and wind)
  - Biaxial bending checks with sag rods at mid span or third points
  - Deflection checks against L/n limits
  - Section modulus and self weight checks
  - Batch designs from Excel workbooks
  - PDF calculation sheets

Sections come from the built-in steel catalog (pile, light lip channel,
rectangular tube, light channel, I and WF sections).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopurlin v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Steel Purlin Designer                                ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of steel roof purlins")
		fmt.Println("  by allowable stress design.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Gravity and wind load resolution on sloped roofs")
		fmt.Println("    • Bending, deflection, modulus and self weight checks")
		fmt.Println("    • Built-in steel section catalog")
		fmt.Println("    • Excel batch designs, PDF reports and an HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gopurlin --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
