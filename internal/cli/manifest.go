package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/inference"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
)

func newManifestCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Check a feature manifest against the patient record fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := inference.LoadManifest(file)
			if err != nil {
				return err
			}

			mismatch := manifest.Compare(model.FieldNames())
			out := cmd.OutOrStdout()
			if mismatch.Empty() {
				fmt.Fprintf(out, "OK: %d features match the patient record\n", manifest.Len())
				return nil
			}

			if len(mismatch.Missing) > 0 {
				fmt.Fprintf(out, "Not in patient record: %s\n", strings.Join(mismatch.Missing, ", "))
			}
			if len(mismatch.Unknown) > 0 {
				fmt.Fprintf(out, "Not in manifest:       %s\n", strings.Join(mismatch.Unknown, ", "))
			}
			return mismatch
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "models/feature_columns.json", "feature manifest to check")
	return cmd
}
