package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	var metricsOut string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Wire the configuration and exercise the resulting cache pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Check(cmd.Context(), c.configs)
			if metricsOut != "" {
				if werr := c.app.WriteMetrics(metricsOut); werr != nil && err == nil {
					err = werr
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "providers: %s\n", strings.Join(report.Providers, ", "))
			if report.Cache == "" {
				_, _ = fmt.Fprintln(out, "cache: disabled")
			} else {
				_, _ = fmt.Fprintf(out, "cache: %s (ttl %ds, round trip ok)\n", report.Cache, report.TTL)
			}
			_, _ = fmt.Fprintf(out, "fingerprint: %s\n", report.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this file")
	return cmd
}
