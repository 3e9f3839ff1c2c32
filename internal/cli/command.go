package cli

import (
	"fmt"

	"github.com/me/msuite/internal/cmdline"
	"github.com/me/msuite/internal/validate"
	"github.com/spf13/cobra"
)

func newCommandCmd() *cobra.Command {
	var (
		inFormat string
		binary   string
		scratch  string
	)

	cmd := &cobra.Command{
		Use:   "command <kind> <file|->",
		Short: "Print the checkm command lines a record plans",
		Long: `command prepares a record the way the service does (trim, defaults,
validation) and prints the checkm invocations it would run, one per line.
Nothing is executed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecord(cmd, args[0], args[1], inFormat)
			if err != nil {
				return err
			}
			if err := validate.NewValidator(logger).Prepare(rec); err != nil {
				return err
			}

			if binary == "" {
				binary = cfg.Server.CheckM
			}
			if scratch == "" {
				scratch = cfg.Server.ScratchDir
			}
			cmds, err := cmdline.NewBuilder(binary, scratch).Build(rec)
			if err != nil {
				return err
			}
			for _, c := range cmds {
				fmt.Fprintln(cmd.OutOrStdout(), c.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFormat, "in-format", "", "Input format, json or yaml (default from file extension)")
	cmd.Flags().StringVar(&binary, "checkm", "", "checkm binary (default from config)")
	cmd.Flags().StringVar(&scratch, "scratch", "", "Scratch directory for planned folders (default from config)")
	return cmd
}
