package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the builder calls the configuration would produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := c.app.Plan(c.configs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(plan); err != nil {
				return zerr.Wrap(err, "failed to encode plan")
			}
			if err := enc.Close(); err != nil {
				return zerr.Wrap(err, "failed to encode plan")
			}
			_, _ = fmt.Fprintf(out, "# fingerprint: %s\n", plan.Fingerprint())
			return nil
		},
	}
}
