package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the service has a model loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := newClient().Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Server Status: %s\n", status.Status)
			fmt.Fprintf(out, "Model:         %s\n", status.ModelType)
			fmt.Fprintf(out, "Features:      %d\n", status.Features)
			return nil
		},
	}
}
