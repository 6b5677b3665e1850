package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/swap/internal/core/domain"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.app.Validate(c.configs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "configuration is valid")
			_, _ = fmt.Fprintf(out, "providers: %s\n", strings.Join(cfg.ProviderNames(), ", "))
			_, _ = fmt.Fprintf(out, "cache: %s\n", describeCache(cfg.Cache))
			return nil
		},
	}
}

func describeCache(cache domain.CacheConfig) string {
	if !cache.Enabled() {
		return "disabled"
	}
	return fmt.Sprintf("%s (ttl %ds)", cache.Type, cache.TTL)
}
