package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess <asap.tsv> <persuade.csv> <output.csv>",
	Short: "Merge essay datasets into one cleaned CSV",
	Long: `Merge the ASAP-AES training TSV and the PERSUADE corpus CSV into a
single cleaned CSV ready for model experiments.

Essay text is stripped of anonymisation tokens, whitespace-normalised,
and rows shorter than 20 characters are dropped. Scores are min-max
normalised per dataset and essay set into a score_norm column.`,
	Args: cobra.ExactArgs(3),
	RunE: runPreprocess,
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	if preprocessService == nil {
		return errors.New("preprocess service not configured")
	}

	report, err := preprocessService.Preprocess(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return err
	}

	cmd.Printf("Read %d ASAP rows, %d PERSUADE rows\n", report.ASAPRead, report.PersuadeRead)
	cmd.Printf("Wrote %d cleaned rows to %s\n", report.Written, report.OutputPath)
	if report.Dropped > 0 {
		cmd.Printf("Dropped %d rows shorter than the minimum length\n", report.Dropped)
	}
	if report.Malformed > 0 {
		cmd.Printf("Skipped %d malformed rows\n", report.Malformed)
	}
	return nil
}
