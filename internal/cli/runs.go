package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/me/msuite/pkg/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	var (
		state  string
		kind   string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "runs [run_id]",
		Short: "List recorded run calls, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showRun(cmd, args[0])
			}

			q := url.Values{}
			if state != "" {
				q.Set("state", state)
			}
			if kind != "" {
				q.Set("kind", kind)
			}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			if offset > 0 {
				q.Set("offset", strconv.Itoa(offset))
			}
			path := "/api/v1/runs"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			resp, err := apiClient.Get(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			var runs []model.Run
			if err := json.Unmarshal(resp.Data, &runs); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs found.")
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"ID", "Kind", "State", "Created"})
			for _, r := range runs {
				table.Append([]string{r.ID, r.Kind, string(r.State), r.CreatedAt.Local().Format(time.DateTime)})
			}
			table.Render()

			if pg := resp.Pagination; pg != nil && pg.HasMore {
				fmt.Fprintf(out, "\n(%d of %d shown)\n", len(runs), pg.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Filter by state (RUNNING, SUCCEEDED, FAILED)")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by record kind")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of runs (server default 20)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of runs to skip")
	return cmd
}

func showRun(cmd *cobra.Command, id string) error {
	resp, err := apiClient.Get(cmd.Context(), "/api/v1/runs/"+url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}
	var run model.Run
	if err := json.Unmarshal(resp.Data, &run); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run: %s\n", run.ID)
	fmt.Fprintf(out, "  Method:  %s\n", run.Method)
	fmt.Fprintf(out, "  State:   %s\n", run.State)
	fmt.Fprintf(out, "  Created: %s\n", run.CreatedAt.Local().Format(time.DateTime))
	if run.CompletedAt != nil {
		fmt.Fprintf(out, "  Done:    %s\n", run.CompletedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintf(out, "  Params:  %s\n", run.Params)
	if len(run.Result) > 0 {
		fmt.Fprintf(out, "  Result:  %s\n", run.Result)
	}
	if run.Error != "" {
		fmt.Fprintf(out, "  Error:   %s\n", run.Error)
	}
	return nil
}
