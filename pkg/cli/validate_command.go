// Package cli implements the ossa command-line commands. Commands are thin
// wrappers: they read input, call the validation engine and render its result
// verbatim, never re-deriving validity or level themselves.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/ossa-dev/ossa/pkg/console"
	"github.com/ossa-dev/ossa/pkg/fileutil"
	"github.com/ossa-dev/ossa/pkg/logger"
	"github.com/ossa-dev/ossa/pkg/schemas"
	"github.com/ossa-dev/ossa/pkg/validation"
)

var validateLog = logger.New("cli:validate_command")

// fileResult pairs one input file with its validation outcome.
type fileResult struct {
	File   string
	Result *validation.Result
	Err    error
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]...",
		Short: "Validate agent manifests against the OSSA schema",
		Long: `Validate one or more agent manifest files (YAML or JSON) against their
declared schema version and report structural errors, the certification
level, and optional regulatory compliance findings.

Reads from stdin when a single "-" is given instead of file paths.

Examples:
  ossa validate agent.yaml                   # Validate a single manifest
  ossa validate agents/*.yaml                # Validate multiple manifests
  ossa validate --json agent.yaml            # Machine-readable output
  ossa validate --frameworks EU_AI_Act agent.yaml
  ossa validate --schema-version 0.2.2 agent.yaml
  ossa validate --watch agent.yaml           # Re-validate on file changes
  cat agent.yaml | ossa validate -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			frameworks, _ := cmd.Flags().GetStringSlice("frameworks")
			schemaVersion, _ := cmd.Flags().GetString("schema-version")
			watch, _ := cmd.Flags().GetBool("watch")
			strict, _ := cmd.Flags().GetBool("strict")

			engine := validation.NewEngine(schemas.NewRepository(), "")
			opts := validation.Options{SchemaVersion: schemaVersion, Frameworks: frameworks}

			if watch {
				if len(args) == 1 && args[0] == "-" {
					return fmt.Errorf("--watch cannot be combined with stdin input")
				}
				return watchAndValidate(cmd, engine, args, opts, jsonOutput, strict)
			}

			results, err := validateInputs(engine, args, cmd.InOrStdin(), opts)
			if err != nil {
				return err
			}
			return reportResults(cmd.OutOrStdout(), results, jsonOutput, strict)
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")
	cmd.Flags().StringSlice("frameworks", nil, "Regulatory frameworks to check (e.g. ISO_42001_2023,EU_AI_Act)")
	cmd.Flags().String("schema-version", "", "Override the schema version instead of using the manifest's apiVersion")
	cmd.Flags().BoolP("watch", "w", false, "Watch the given files and re-validate on change")
	cmd.Flags().Bool("strict", false, "Treat warnings as failures")

	return cmd
}

// validateInputs validates every input concurrently. Results keep the order
// of the arguments regardless of completion order.
func validateInputs(engine *validation.Engine, args []string, stdin io.Reader, opts validation.Options) ([]fileResult, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		result, err := engine.ValidateManifest(string(data), opts)
		return []fileResult{{File: "<stdin>", Result: result, Err: err}}, nil
	}

	for _, file := range args {
		if !fileutil.FileExists(file) {
			return nil, fmt.Errorf("manifest file not found: %s", file)
		}
	}

	validateLog.Printf("validating %d manifests", len(args))
	results := make([]fileResult, len(args))
	var wg conc.WaitGroup
	for i, file := range args {
		wg.Go(func() {
			results[i] = validateFile(engine, file, opts)
		})
	}
	wg.Wait()
	return results, nil
}

func validateFile(engine *validation.Engine, file string, opts validation.Options) fileResult {
	text, err := fileutil.ReadTextFile(file)
	if err != nil {
		return fileResult{File: file, Err: err}
	}
	result, err := engine.ValidateManifest(text, opts)
	return fileResult{File: file, Result: result, Err: err}
}

// reportResults renders all results and returns an error when any input
// failed validation, so the process exits non-zero.
func reportResults(out io.Writer, results []fileResult, jsonOutput, strict bool) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("%s: %v", r.File, r.Err)))
			continue
		}
		if jsonOutput {
			fmt.Fprintln(out, FormatResultJSON(r.File, r.Result))
		} else {
			fmt.Fprint(out, FormatResult(r.File, r.Result))
		}
		if !r.Result.Valid || (strict && len(r.Result.Warnings) > 0) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed for %d of %d manifests", failed, len(results))
	}
	return nil
}
