// Package commands implements the CLI commands for the swap wiring tool.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/swap/internal/app"
	"go.trai.ch/swap/internal/build"
	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for swap.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	configs  []string
	services []string
	logLevel string
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "swap",
		Short:         "Validate and wire exchange-rate providers onto the swap builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringArrayVarP(&c.configs, "config", "c",
		[]string{domain.ConfigFileName}, "Configuration file, repeat to merge several in order")
	rootCmd.PersistentFlags().StringArrayVar(&c.services, "service", nil,
		"Declare a host service as id[=capability,...]")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return c.prepare()
	}

	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func (c *CLI) prepare() error {
	if err := c.app.SetLogLevel(c.logLevel); err != nil {
		return err
	}

	for _, decl := range c.services {
		id, caps, err := parseService(decl)
		if err != nil {
			return err
		}
		if err := c.app.DefineService(id, caps...); err != nil {
			return err
		}
	}
	return nil
}

// parseService reads a declaration of the form id[=capability,...].
func parseService(decl string) (string, []domain.Capability, error) {
	id, list, _ := strings.Cut(decl, "=")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", nil, zerr.With(zerr.Wrap(domain.ErrMissingRequired, "service declaration has no id"), "value", decl)
	}

	var caps []domain.Capability
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			caps = append(caps, domain.Capability(name))
		}
	}
	return id, caps, nil
}
