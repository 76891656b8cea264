package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/client"
)

var (
	apiURL  string
	timeout time.Duration
)

func defaultAPIURL() string {
	if v := os.Getenv("CERVIX_WEB_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8000/predict"
}

// NewRootCmd builds a fresh command tree, so tests can run it repeatedly.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "riskctl",
		Short: "Command-line client for the cervical cancer risk service",
		Long: `riskctl submits patient records to the cervical cancer risk service,
checks that the service is ready and validates feature manifests offline.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "prediction service URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "request timeout")

	rootCmd.AddCommand(newPredictCmd(), newHealthCmd(), newManifestCmd())
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(fmt.Sprintf("riskctl version %s\n", rootCmd.Version))
	return rootCmd
}

func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func newClient() *client.Client {
	return client.New(client.Config{
		BaseURL: apiURL,
		Timeout: timeout,
	})
}
