package cli

import (
	"fmt"

	"github.com/me/msuite/internal/validate"
	"github.com/me/msuite/pkg/params"
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var (
		inFormat   string
		outFormat  string
		noValidate bool
	)

	cmd := &cobra.Command{
		Use:   "submit <kind> <file|->",
		Short: "Send a record to the kb_Msuite service and print the result",
		Long: `submit validates a record locally, calls the service method registered
for its kind and prints the result record. Use --no-validate to leave
validation to the server.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecord(cmd, args[0], args[1], inFormat)
			if err != nil {
				return err
			}
			if !noValidate {
				if err := validate.NewValidator(logger).Prepare(rec); err != nil {
					return err
				}
			}

			logger.Info("submitting", "kind", rec.Kind(), "server", client.URL())
			result, err := client.Submit(cmd.Context(), rec)
			if err != nil {
				return fmt.Errorf("submit: %w", err)
			}
			return writeRecord(cmd, result, outFormat)
		},
	}

	cmd.Flags().StringVar(&inFormat, "in-format", "", "Input format, json or yaml (default from file extension)")
	cmd.Flags().StringVarP(&outFormat, "format", "o", params.FormatJSON, "Result format, json or yaml")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip local trimming, defaults and validation")
	return cmd
}
