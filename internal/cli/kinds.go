package cli

import (
	"fmt"
	"strconv"

	"github.com/me/msuite/pkg/kbrpc"
	"github.com/me/msuite/pkg/params"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List parameter record kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Kind", "Method", "Fields"})
			table.SetAutoWrapText(false)
			for _, kind := range params.Kinds() {
				names, err := params.FieldNames(kind)
				if err != nil {
					return err
				}
				method, ok := kbrpc.MethodForKind(kind)
				if !ok {
					method = "-"
				}
				table.Append([]string{kind, method, strconv.Itoa(len(names))})
			}
			table.Render()
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <kind> [file]",
		Short: "Show the declared fields of a kind, or of a record file",
		Long: `Without a file, show prints the declared fields of kind and their types.
With a file, it decodes the record and prints each field's value, followed
by any extension properties.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			rec, err := params.New(kind)
			if err != nil {
				return err
			}
			if len(args) == 2 {
				if rec, err = readRecord(cmd, kind, args[1], ""); err != nil {
					return err
				}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoWrapText(false)
			if len(args) == 1 {
				table.SetHeader([]string{"Field", "Type"})
				for _, f := range params.Fields(rec) {
					table.Append([]string{f.Name, f.Type})
				}
				table.Render()
				return nil
			}

			table.SetHeader([]string{"Field", "Type", "Value"})
			for _, f := range params.Fields(rec) {
				value := "<unset>"
				if f.Set {
					value = displayValue(f.Value)
				}
				table.Append([]string{f.Name, f.Type, value})
			}
			for _, prop := range rec.AdditionalProperties().List() {
				table.Append([]string{prop.Name, "extra", displayValue(prop.Value)})
			}
			table.Render()
			return nil
		},
	}
}

// displayValue renders a field or extension value for a table cell.
func displayValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	default:
		if b, err := params.ValueJSON(v); err == nil {
			return string(b)
		}
		return fmt.Sprint(v)
	}
}
