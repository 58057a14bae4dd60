package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davral/llmrelay/internal/config"
	"github.com/davral/llmrelay/internal/gateway"
	"github.com/davral/llmrelay/internal/llm"
	"github.com/davral/llmrelay/internal/tools"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the relay server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			if port != 0 {
				cfg.Server.Port = port
			}
			if bind != "" {
				cfg.Server.Bind = bind
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				for _, issue := range issues {
					log.Error().Str("path", issue.Path).Msg(issue.Message)
				}
				return fmt.Errorf("config validation failed with %d issue(s)", len(issues))
			}

			catalog := tools.NewCatalog()
			client := llm.New(cfg.LLM, log)

			log.Info().
				Str("url", cfg.LLM.URL).
				Str("model", cfg.LLM.Model).
				Int("tools", catalog.Len()).
				Msg("downstream LLM configured")

			// Block until SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := gateway.New(cfg, log, catalog, gateway.WithLLM(client))
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server port")
	cmd.Flags().StringVar(&bind, "bind", "", "override bind mode (loopback, lan, auto, custom)")

	return cmd
}
