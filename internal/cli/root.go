package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/davral/llmrelay/internal/config"
	"github.com/davral/llmrelay/internal/logging"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llmrelay",
		Short: "llmrelay is a chat relay for an OpenAI-compatible LLM server",
		Long:  "llmrelay sits between a chat frontend and an OpenAI-compatible inference server, forwarding conversations with a static tool catalog and returning the assistant's reply.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			godotenv.Load() // best-effort .env

			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if err := paths.EnsureDirs(); err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}
			level := logLevel
			if level == "" {
				level = "info"
			}
			log = logging.New(nil, level, "pretty")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.llmrelay/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newToolsCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
