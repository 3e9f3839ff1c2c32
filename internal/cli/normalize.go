package cli

import (
	"github.com/me/msuite/internal/validate"
	"github.com/me/msuite/pkg/params"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var (
		inFormat  string
		outFormat string
		defaults  bool
	)

	cmd := &cobra.Command{
		Use:   "normalize <kind> <file|->",
		Short: "Re-encode a record in declared field order",
		Long: `normalize decodes a record, trims its string fields, fills documented
defaults and writes it back with declared fields first and extension
properties after them. It does not validate.`,
		Args: cobra.ExactArgs(2),
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
			format := outFormat
			if format == "" {
				format = inFormat
			}
			if format == "" {
				format = params.FormatForPath(args[1])
			}
			return writeRecord(cmd, rec, format)
		},
	}

	cmd.Flags().StringVar(&inFormat, "in-format", "", "Input format, json or yaml (default from file extension)")
	cmd.Flags().StringVarP(&outFormat, "format", "o", "", "Output format, json or yaml (default: input format)")
	cmd.Flags().BoolVar(&defaults, "defaults", true, "Fill unset fields with their defaults")
	return cmd
}
