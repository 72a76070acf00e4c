package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ossa-dev/ossa/pkg/constants"
	"github.com/ossa-dev/ossa/pkg/fileutil"
	"github.com/ossa-dev/ossa/pkg/parser"
	"github.com/ossa-dev/ossa/pkg/validation"
)

// NewComplianceCommand creates the compliance command.
func NewComplianceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliance [file]",
		Short: "Check a manifest against regulatory compliance frameworks",
		Long: fmt.Sprintf(`Evaluate an agent manifest against regulatory frameworks, independent of
schema validation. Supported frameworks: %v.

Reads from stdin when "-" is given instead of a file path.

Examples:
  ossa compliance agent.yaml --frameworks ISO_42001_2023
  ossa compliance agent.yaml --frameworks ISO_42001_2023,EU_AI_Act --json`, constants.SupportedFrameworks),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frameworks, _ := cmd.Flags().GetStringSlice("frameworks")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			if len(frameworks) == 0 {
				return fmt.Errorf("at least one framework is required (--frameworks)")
			}

			text, err := readArgOrStdin(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			manifest, err := parser.Parse(text)
			if err != nil {
				return fmt.Errorf("parsing manifest: %w", err)
			}

			report := validation.CheckCompliance(manifest.Raw(), frameworks)

			if jsonOutput {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), FormatComplianceReport(report))
			}

			if report.TotalErrors > 0 {
				return fmt.Errorf("compliance check found %d errors", report.TotalErrors)
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("frameworks", nil, "Regulatory frameworks to check")
	cmd.Flags().BoolP("json", "j", false, "Output the report in JSON format")

	return cmd
}

// readArgOrStdin reads a manifest from the path argument, or from stdin when
// the argument is "-".
func readArgOrStdin(arg string, stdin io.Reader) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	if !fileutil.FileExists(arg) {
		return "", fmt.Errorf("manifest file not found: %s", arg)
	}
	return fileutil.ReadTextFile(arg)
}
