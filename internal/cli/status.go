package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davral/llmrelay/internal/config"
	"github.com/davral/llmrelay/internal/tools"
	"github.com/davral/llmrelay/internal/version"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show llmrelay status and configuration summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("llmrelay %s (commit %s)\n\n", version.Version, version.Commit)

			fmt.Printf("Config:  %s\n", paths.Config)
			fmt.Printf("Logs:    %s\n", paths.Logs)
			fmt.Println()

			cfg, err := config.Load(paths.Config)
			if err != nil {
				if os.IsNotExist(err) {
					fmt.Println("Config:  not found (using defaults)")
				} else {
					fmt.Printf("Config:  error loading: %v\n", err)
				}
				return nil
			}

			fmt.Printf("Server:  port=%d bind=%s tls=%v\n",
				cfg.Server.Port, cfg.Server.Bind, cfg.Server.TLS.Enabled)
			fmt.Printf("CORS:    %s\n", strings.Join(cfg.Server.AllowedOrigins, ", "))
			fmt.Printf("LLM:     url=%s model=%s timeout=%s\n",
				cfg.LLM.URL, cfg.LLM.Model, cfg.LLM.Timeout())

			catalog := tools.NewCatalog()
			var names []string
			for _, d := range catalog.Definitions() {
				names = append(names, d.Name)
			}
			fmt.Printf("Tools:   %s\n", strings.Join(names, ", "))

			if cfg.Debug.UserID != "" {
				fmt.Printf("Debug:   disclosure enabled for userId=%q\n", cfg.Debug.UserID)
			} else {
				fmt.Println("Debug:   disclosure disabled")
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				fmt.Printf("\nValidation issues (%d):\n", len(issues))
				for _, issue := range issues {
					fmt.Printf("  - %s: %s\n", issue.Path, issue.Message)
				}
			}

			return nil
		},
	}
}
