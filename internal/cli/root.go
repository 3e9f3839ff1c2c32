package cli

import (
	"log/slog"
	"time"

	"github.com/me/msuite/internal/config"
	"github.com/me/msuite/internal/logging"
	"github.com/me/msuite/pkg/kbrpc"
	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagToken     string
	flagConfig    string
	flagEnvFile   string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg       *config.Config
	logger    *slog.Logger
	client    *kbrpc.Client
	apiClient *APIClient
)

// NewRootCmd creates the root cobra command for the msuite CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "msuite",
		Short: "msuite: CheckM parameter records for kb_Msuite",
		Long: `msuite inspects, normalizes and validates CheckM parameter records and
submits them to a kb_Msuite JSON-RPC service.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flagConfig, flagEnvFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("server") {
				cfg.Client.Server = flagServer
			}
			if flags.Changed("token") {
				cfg.Client.Token = flagToken
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = flagLogLevel
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = flagLogFormat
			}
			if flagDebug {
				cfg.Log.Level = "debug"
			}

			logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, cmd.ErrOrStderr())

			if cfg.Client.Token == "" {
				if tok, err := kbrpc.LoadTokenFromFile(); err == nil {
					cfg.Client.Token = tok
				}
			}
			client = kbrpc.NewClient(kbrpc.DefaultConfig().
				WithURL(cfg.Client.Server).
				WithToken(cfg.Client.Token).
				WithTimeout(cfg.Client.Timeout).
				WithRetries(cfg.Client.MaxRetries, time.Second), logger)
			apiClient = NewAPIClient(cfg.Client.Server, logger)
			return nil
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagServer, "server", "", "kb_Msuite JSON-RPC URL (or MSUITE_SERVER env)")
	pf.StringVar(&flagToken, "token", "", "KBase auth token (or KB_AUTH_TOKEN env, or ~/.kbase_token)")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Path to a .env file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newKindsCmd(),
		newShowCmd(),
		newNormalizeCmd(),
		newValidateCmd(),
		newCommandCmd(),
		newSubmitCmd(),
		newStatusCmd(),
		newRunsCmd(),
		newLoginCmd(),
	)

	return root
}
