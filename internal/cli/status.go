package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the kb_Msuite service status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := client.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"Server", "State", "Version", "Commit"})
			table.Append([]string{client.URL(), st.State, st.Version, st.GitCommitHash})
			table.Render()
			if st.Message != "" {
				fmt.Fprintln(cmd.OutOrStdout(), st.Message)
			}
			return nil
		},
	}
}
