package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/risk"
)

func newPredictCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Submit a patient record and print the assessment",
		Long: `Reads a JSON object with all 30 patient fields and submits it once.
Prints the classifier output and the risk category derived from the
returned probability.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := readRecord(file)
			if err != nil {
				return err
			}

			res, err := newClient().Predict(cmd.Context(), record)
			if err != nil {
				return fmt.Errorf("prediction failed: %w", err)
			}

			category := risk.Classify(res.ProbabilityPercent)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Prediction:     %d\n", res.Prediction)
			fmt.Fprintf(out, "Risk level:     %s\n", res.RiskLevel)
			fmt.Fprintf(out, "Probability:    %.2f%%\n", res.ProbabilityPercent)
			fmt.Fprintf(out, "Interpretation: %s\n", res.Interpretation)
			fmt.Fprintf(out, "Risk category:  %s\n", category.Name)
			fmt.Fprintln(out, "Recommendations:")
			for _, r := range risk.Recommendations(category) {
				fmt.Fprintf(out, "  - %s\n", r)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the patient record (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// readRecord loads a complete record. Unknown keys are rejected here since a
// typo in a local file is almost always a mistake.
func readRecord(path string) (*model.PatientRecord, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var values map[string]float64
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}

	record, err := model.NewPatientRecord(values)
	if err != nil {
		return nil, err
	}
	if missing := record.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("record is missing fields: %s", strings.Join(missing, ", "))
	}
	return record, nil
}
