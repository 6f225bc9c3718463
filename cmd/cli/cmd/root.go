// Package cmd provides the CLI commands for policy-pricing.
package cmd

import (
	"fmt"

	"policy_pricing/internal/infrastructure/logging"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// NewRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "policy-pricing",
		Short: "Price insurance policies from holder attributes",
		Long: `policy-pricing computes the BMI of a policy holder and the policy price
(base fee plus age, smoker and BMI surcharges) without touching storage.

Examples:
  policy-pricing quote --age 55 --smoking-status smoker --height 70 --weight 150
  policy-pricing quote --height 60 --weight 300 --format json
  policy-pricing bmi --height 70 --weight 150`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := logging.ConfigFromEnv()
			if verbose {
				cfg.Level = "debug"
			}
			logging.Initialize(cfg)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newQuoteCmd())
	root.AddCommand(newBMICmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "policy-pricing version %s\n", version)
		},
	})
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}
