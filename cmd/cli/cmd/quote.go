package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"policy_pricing/internal/adapter/http/dto/response"
	"policy_pricing/internal/domain/entities"
	"policy_pricing/internal/usecase"

	"github.com/spf13/cobra"
)

type holderFlags struct {
	policyNumber  string
	providerName  string
	firstName     string
	lastName      string
	age           int
	smokingStatus string
	height        int
	weight        int
}

func (f holderFlags) policy() entities.Policy {
	return entities.NewPolicy(f.policyNumber, f.providerName, f.firstName, f.lastName, f.age, f.smokingStatus, f.height, f.weight)
}

func newQuoteCmd() *cobra.Command {
	var (
		flags  holderFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the price breakdown for a policy holder",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := flags.policy()
			b := usecase.NewPolicyUseCase(nil).QuotePolicy(cmd.Context(), p)
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(response.FromPriceBreakdown(b))
			case "text":
				if p.PolicyNumber != "" {
					fmt.Fprintf(out, "Policy:            %s\n", p.PolicyNumber)
				}
				fmt.Fprintf(out, "BMI:               %s\n", formatFloat(b.BMI))
				fmt.Fprintf(out, "Base fee:          %s\n", formatFloat(b.BaseFee))
				fmt.Fprintf(out, "Age surcharge:     %s\n", formatFloat(b.AgeSurcharge))
				fmt.Fprintf(out, "Smoker surcharge:  %s\n", formatFloat(b.SmokerSurcharge))
				fmt.Fprintf(out, "BMI surcharge:     %s\n", formatFloat(b.BMISurcharge))
				fmt.Fprintf(out, "Total:             %s\n", formatFloat(b.Total))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.policyNumber, "policy-number", "", "policy number")
	cmd.Flags().StringVar(&flags.providerName, "provider", "", "insurance provider name")
	cmd.Flags().StringVar(&flags.firstName, "first-name", "", "holder first name")
	cmd.Flags().StringVar(&flags.lastName, "last-name", "", "holder last name")
	cmd.Flags().IntVar(&flags.age, "age", 0, "holder age in years")
	cmd.Flags().StringVar(&flags.smokingStatus, "smoking-status", "", `"smoker" or "non-smoker"`)
	cmd.Flags().IntVar(&flags.height, "height", 0, "holder height in inches")
	cmd.Flags().IntVar(&flags.weight, "weight", 0, "holder weight in pounds")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}

func newBMICmd() *cobra.Command {
	var flags holderFlags

	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Print the body mass index for a height and weight",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(flags.policy().CalculateBMI()))
		},
	}

	cmd.Flags().IntVar(&flags.height, "height", 0, "height in inches")
	cmd.Flags().IntVar(&flags.weight, "weight", 0, "weight in pounds")
	return cmd
}

// formatFloat prints two decimals, or Go's +Inf/NaN spelling.
func formatFloat(v float64) string {
	if s := response.FormatPrice(v); s != "" {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
