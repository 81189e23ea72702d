package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
	"github.com/spf13/cobra"
)

// unsetWeight marks a weight flag that was not given.
const unsetWeight = -1

var (
	procureJSON  bool
	historyLimit int
	weightFlags = procurement.Criteria{Price: unsetWeight, Quality: unsetWeight, Delivery: unsetWeight, Support: unsetWeight}
)

var procureCmd = &cobra.Command{
	Use:   "procure",
	Short: "Score supplier quotes for equipment comparisons",
}

var procureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the comparisons in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		comparisons, err := services.Procurement.ListComparisons(cmd.Context())
		if err != nil {
			return MapError(err)
		}
		summaries := application.SummarizeComparisons(comparisons)

		if procureJSON {
			return writeJSON(os.Stdout, summaries)
		}
		if len(summaries) == 0 {
			fmt.Println("No comparisons found.")
			return nil
		}
		for _, s := range summaries {
			fmt.Printf("%-24s %-36s %d quotes", s.ID, s.Title, s.Quotes)
			if s.Primary != "" {
				fmt.Printf("  recommended: %s", s.Primary)
			}
			fmt.Println()
		}
		return nil
	},
}

var procureScoreCmd = &cobra.Command{
	Use:   "score <comparison-id>",
	Short: "Rank the quotes of a comparison",
	Long: `Rank the quotes of a comparison under the stored criteria weights.

Any --price, --quality, --delivery or --support flag overrides that weight
for this run only.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		var override *procurement.Criteria
		if weightFlagsSet() {
			stored, err := services.Procurement.GetCriteria(cmd.Context())
			if err != nil {
				return MapError(err)
			}
			merged := applyWeightFlags(stored)
			override = &merged
		}

		result, err := services.Procurement.Compare(cmd.Context(), args[0], override)
		if err != nil {
			return MapError(err)
		}

		if procureJSON {
			return writeJSON(os.Stdout, result)
		}
		renderResult(os.Stdout, result)
		return nil
	},
}

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show or change the stored criteria weights",
}

var weightsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored criteria weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		c, err := services.Procurement.GetCriteria(cmd.Context())
		if err != nil {
			return MapError(err)
		}
		return printCriteria(c)
	},
}

var weightsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more weights exactly",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !weightFlagsSet() {
			return NewCLIError("no weights given", "Pass at least one of --price, --quality, --delivery, --support", nil)
		}
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		stored, err := services.Procurement.GetCriteria(cmd.Context())
		if err != nil {
			return MapError(err)
		}
		c, err := services.Procurement.UpdateCriteria(cmd.Context(), applyWeightFlags(stored), currentActor())
		if err != nil {
			return MapError(err)
		}
		return printCriteria(c)
	},
}

var weightsStepCmd = &cobra.Command{
	Use:   "step <criterion> <notches>",
	Short: "Move one weight by 5-point slider notches (clamped to 5..50)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		criterion, err := procurement.ParseCriterion(args[0])
		if err != nil {
			return MapError(err)
		}
		steps, err := strconv.Atoi(args[1])
		if err != nil {
			return NewCLIError("invalid notch count", "Use a whole number such as 1 or -2", err)
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		c, err := services.Procurement.StepCriterion(cmd.Context(), criterion, steps, currentActor())
		if err != nil {
			return MapError(err)
		}
		return printCriteria(c)
	},
}

var weightsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		c, err := services.Procurement.ResetCriteria(cmd.Context(), currentActor())
		if err != nil {
			return MapError(err)
		}
		return printCriteria(c)
	},
}

var procureHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded weight changes and verify the audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		history, err := services.Procurement.History(cmd.Context(), historyLimit)
		if err != nil {
			return MapError(err)
		}
		if procureJSON {
			return writeJSON(os.Stdout, history)
		}
		renderHistory(os.Stdout, history)
		return nil
	},
}

func printCriteria(c procurement.Criteria) error {
	if procureJSON {
		return writeJSON(os.Stdout, application.NewCriteriaView(c))
	}
	fmt.Println(criteriaLine(c))
	return nil
}

func weightFlagsSet() bool {
	return weightFlags.Price != unsetWeight || weightFlags.Quality != unsetWeight ||
		weightFlags.Delivery != unsetWeight || weightFlags.Support != unsetWeight
}

func applyWeightFlags(c procurement.Criteria) procurement.Criteria {
	if weightFlags.Price != unsetWeight {
		c.Price = weightFlags.Price
	}
	if weightFlags.Quality != unsetWeight {
		c.Quality = weightFlags.Quality
	}
	if weightFlags.Delivery != unsetWeight {
		c.Delivery = weightFlags.Delivery
	}
	if weightFlags.Support != unsetWeight {
		c.Support = weightFlags.Support
	}
	return c
}

func addWeightFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&weightFlags.Price, "price", unsetWeight, "Price weight")
	cmd.Flags().IntVar(&weightFlags.Quality, "quality", unsetWeight, "Quality weight")
	cmd.Flags().IntVar(&weightFlags.Delivery, "delivery", unsetWeight, "Delivery weight")
	cmd.Flags().IntVar(&weightFlags.Support, "support", unsetWeight, "Support weight")
}

func init() {
	procureCmd.PersistentFlags().BoolVar(&procureJSON, "json", false, "Output in JSON format")

	procureHistoryCmd.Flags().IntVar(&historyLimit, "limit", 10, "Show at most this many changes (0 for all)")
	addWeightFlags(procureScoreCmd)
	addWeightFlags(weightsSetCmd)

	weightsCmd.AddCommand(weightsShowCmd, weightsSetCmd, weightsStepCmd, weightsResetCmd)
	procureCmd.AddCommand(procureListCmd, procureScoreCmd, weightsCmd, procureHistoryCmd)
	RootCmd.AddCommand(procureCmd)
}
