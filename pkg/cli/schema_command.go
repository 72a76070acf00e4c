package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ossa-dev/ossa/pkg/console"
	"github.com/ossa-dev/ossa/pkg/constants"
	"github.com/ossa-dev/ossa/pkg/schemas"
)

// NewSchemaCommand creates the schema command with its list and show
// subcommands.
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the bundled OSSA schema versions",
	}
	cmd.AddCommand(newSchemaListCommand())
	cmd.AddCommand(newSchemaShowCommand())
	return cmd
}

func newSchemaListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available schema versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := schemas.NewRepository()

			config := console.TableConfig{
				Title:   "OSSA Schema Versions",
				Headers: []string{"Version", "Status"},
			}
			for _, version := range repo.Versions() {
				status := "available"
				if version == constants.DefaultSchemaVersion {
					status = "stable (default)"
				}
				config.Rows = append(config.Rows, []string{version, status})
			}
			fmt.Fprint(cmd.OutOrStdout(), console.RenderTable(config))
			return nil
		},
	}
}

func newSchemaShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [version]",
		Short: "Print a schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := schemas.NewRepository()
			doc, err := repo.GetSchema(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
