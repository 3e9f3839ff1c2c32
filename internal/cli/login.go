package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/me/msuite/pkg/kbrpc"
	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store a KBase auth token",
		Long:  "Store a KBase authentication token in ~/.kbase_token for later submit calls. The token is\ntaken from --token or prompted for.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := flagToken
			if token == "" {
				fmt.Fprint(cmd.OutOrStdout(), "KBase token: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read token: %w", err)
				}
				token = strings.TrimSpace(line)
			}
			if token == "" {
				return fmt.Errorf("token cannot be empty")
			}

			path, err := kbrpc.TokenFilePath()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return fmt.Errorf("create token directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
				return fmt.Errorf("write token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", path)
			return nil
		},
	}
}
