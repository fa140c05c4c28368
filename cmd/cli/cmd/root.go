// Package cmd provides the CLI commands for land-audit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"land-audit/internal/config"
	"land-audit/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "land-audit",
	Short: "Audit development proposals on treasury land",
	Long: `land-audit evaluates proposed real-estate development projects against
the Bertaud urban density model and Treasury Department financial
feasibility rules.

Examples:
  land-audit audit --project "Riverside Tower" --distance 5 --proposed 6 --legal-far 4
  land-audit finance --investment 500000000 --cashflow 40000000 --rate 0.05
  land-audit calibrate --samples "0=10,5=6.065,10=3.678"`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.land-audit.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(financeCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("land-audit version 0.1.0")
	},
}
