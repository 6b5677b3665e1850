package commands

import (
	"github.com/grindlemire/graft"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	var mermaid bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the component dependency graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			render := graft.PrintGraph
			if mermaid {
				render = graft.PrintMermaid
			}
			if err := render(cmd.OutOrStdout()); err != nil {
				return zerr.Wrap(err, "failed to render graph")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&mermaid, "mermaid", false, "Render as a Mermaid flowchart")
	return cmd
}
