package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ossa-dev/ossa/pkg/console"
	"github.com/ossa-dev/ossa/pkg/constants"
	"github.com/ossa-dev/ossa/pkg/fileutil"
	"github.com/ossa-dev/ossa/pkg/logger"
)

var newLog = logger.New("cli:new_command")

// NewNewCommand creates the new command: an interactive wizard that scaffolds
// a starter agent manifest.
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create a new agent manifest interactively",
		Long: `Scaffold a starter OSSA agent manifest through an interactive form. The
output file defaults to <agent-name>.yaml in the current directory.

Example:
  ossa new
  ossa new my-agent.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				name         string
				version      = "0.1.0"
				description  string
				capabilityID string
				sections     []string
			)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Agent name").
						Placeholder("billing-agent").
						Validate(func(s string) error {
							if strings.TrimSpace(s) == "" {
								return fmt.Errorf("name is required")
							}
							return nil
						}).
						Value(&name),
					huh.NewInput().
						Title("Version").
						Value(&version),
					huh.NewInput().
						Title("Description").
						Value(&description),
					huh.NewInput().
						Title("First capability id").
						Placeholder("process-request").
						Validate(func(s string) error {
							if strings.TrimSpace(s) == "" {
								return fmt.Errorf("a manifest needs at least one capability")
							}
							return nil
						}).
						Value(&capabilityID),
					huh.NewMultiSelect[string]().
						Title("Optional sections").
						Description("Sections raise the certification level (all four = gold)").
						Options(
							huh.NewOption("security", "security"),
							huh.NewOption("performance", "performance"),
							huh.NewOption("compliance", "compliance"),
							huh.NewOption("api", "api"),
						).
						Value(&sections),
				),
			)

			if err := form.Run(); err != nil {
				return fmt.Errorf("manifest wizard aborted: %w", err)
			}

			manifest := scaffoldManifest(name, version, description, capabilityID, sections)
			data, err := yaml.Marshal(manifest)
			if err != nil {
				return fmt.Errorf("encoding manifest: %w", err)
			}

			output := name + ".yaml"
			if len(args) == 1 {
				output = args[0]
			}
			if fileutil.FileExists(output) {
				return fmt.Errorf("refusing to overwrite existing file: %s", output)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			newLog.Printf("scaffolded manifest %s with %d optional sections", output, len(sections))
			fmt.Fprintln(cmd.OutOrStdout(), console.FormatSuccessMessage("created "+output))
			fmt.Fprintln(cmd.OutOrStdout(), console.FormatDimMessage("run 'ossa validate "+output+"' to check it"))
			return nil
		},
	}

	return cmd
}

// scaffoldManifest builds the manifest document the wizard writes. Selected
// optional sections get minimal placeholder content that passes structural
// validation.
func scaffoldManifest(name, version, description, capabilityID string, sections []string) map[string]any {
	spec := map[string]any{
		"capabilities": []any{
			map[string]any{
				"id":          capabilityID,
				"name":        capabilityID,
				"description": "TODO: describe this capability",
			},
		},
	}
	for _, section := range sections {
		switch section {
		case "security":
			spec["security"] = map[string]any{"authentication": "required"}
		case "performance":
			spec["performance"] = map[string]any{"timeout": "30s"}
		case "compliance":
			spec["compliance"] = map[string]any{"frameworks": []string{}}
		case "api":
			spec["api"] = map[string]any{"openapi": "3.1.0"}
		}
	}

	metadata := map[string]any{
		"name":    name,
		"version": version,
	}
	if description != "" {
		metadata["description"] = description
	}

	return map[string]any{
		"apiVersion": "ossa/v" + constants.DefaultSchemaVersion,
		"kind":       constants.ExpectedKind,
		"metadata":   metadata,
		"spec":       spec,
	}
}
