package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ossa-dev/ossa/pkg/cli"
	"github.com/ossa-dev/ossa/pkg/console"
	"github.com/ossa-dev/ossa/pkg/constants"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   constants.CLIBinaryName,
		Short: "Validate and certify OSSA agent manifests",
		Long: `ossa validates Open Standard for Scalable Agents manifests: structural
schema validation, certification level derivation, regulatory compliance
checks and token cost estimation, from the command line or as a REST API.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "validation", Title: "Validation commands:"},
		&cobra.Group{ID: "authoring", Title: "Authoring commands:"},
		&cobra.Group{ID: "server", Title: "Server commands:"},
	)

	for _, c := range []*cobra.Command{
		cli.NewValidateCommand(),
		cli.NewComplianceCommand(),
		cli.NewEstimateCommand(),
		cli.NewSchemaCommand(),
	} {
		c.GroupID = "validation"
		rootCmd.AddCommand(c)
	}

	newCmd := cli.NewNewCommand()
	newCmd.GroupID = "authoring"
	rootCmd.AddCommand(newCmd)

	serveCmd := cli.NewServeCommand()
	serveCmd.GroupID = "server"
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the ossa version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.CLIBinaryName, version)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
