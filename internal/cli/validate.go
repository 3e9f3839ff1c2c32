package cli

import (
	"fmt"

	"github.com/me/msuite/internal/validate"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		inFormat string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "validate <kind> <file|->",
		Short: "Check a record against the rules for its kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecord(cmd, args[0], args[1], inFormat)
			if err != nil {
				return err
			}
			if err := validate.TrimStrings(rec); err != nil {
				return err
			}
			if defaults {
				validate.ApplyDefaults(rec)
			}

			apiErr := validate.NewValidator(logger).Validate(rec)
			if apiErr == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[1])
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Field", "Problem"})
			table.SetAutoWrapText(false)
			for _, fe := range apiErr.Details {
				table.Append([]string{fe.Field, fe.Message})
			}
			table.Render()
			return fmt.Errorf("%s: %d validation error(s)", args[1], len(apiErr.Details))
		},
	}

	cmd.Flags().StringVar(&inFormat, "in-format", "", "Input format, json or yaml (default from file extension)")
	cmd.Flags().BoolVar(&defaults, "defaults", true, "Fill unset fields with their defaults before validating")
	return cmd
}
