package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/me/msuite/pkg/params"
	"github.com/spf13/cobra"
)

// readRecord decodes a record of kind from path, or from stdin when path
// is "-". An empty format is picked from the file extension.
func readRecord(cmd *cobra.Command, kind, path, format string) (params.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if format == "" {
		format = params.FormatForPath(path)
	}
	rec, err := params.Decode(kind, data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	logger.Debug("record loaded", "kind", kind, "path", path, "format", format, "record", rec.String())
	return rec, nil
}

// writeRecord encodes rec in format to the command's output.
func writeRecord(cmd *cobra.Command, rec params.Record, format string) error {
	out, err := params.Encode(rec, format)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if _, err := w.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Fprintln(w)
	}
	return nil
}
