package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ossa-dev/ossa/pkg/console"
	"github.com/ossa-dev/ossa/pkg/validation"
)

// NewEstimateCommand creates the estimate command.
func NewEstimateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [file]",
		Short: "Estimate token usage and cost for a text payload",
		Long: `Approximate the token count and cost of a text payload (typically an agent
manifest or prompt). The estimate uses a fixed characters-per-token heuristic
and an optimistic compression ratio; treat it as a planning aid, not a
measurement.

Examples:
  ossa estimate prompt.txt
  ossa estimate prompt.txt --model gpt-4o
  cat prompt.txt | ossa estimate -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, _ := cmd.Flags().GetString("model")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			text, err := readArgOrStdin(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			estimate := validation.EstimateTokens(text, model)

			if jsonOutput {
				data, err := json.MarshalIndent(estimate, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), console.RenderStruct(*estimate))
			return nil
		},
	}

	cmd.Flags().StringP("model", "m", "", "Model name for per-token pricing")
	cmd.Flags().BoolP("json", "j", false, "Output the estimate in JSON format")

	return cmd
}
