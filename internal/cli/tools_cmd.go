package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davral/llmrelay/internal/tools"
)

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect and run catalog tools locally",
	}

	cmd.AddCommand(newToolsListCmd())
	cmd.AddCommand(newToolsRunCmd())
	return cmd
}

func newToolsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tools advertised to the LLM server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tools.NewCatalog().Definitions())
		},
	}
}

func newToolsRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <name> [json-parameters]",
		Short: "Invoke a tool directly, outside the chat flow",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &params); err != nil {
					return fmt.Errorf("parsing parameters: %w", err)
				}
			}

			result, err := tools.NewCatalog().Execute(args[0], params)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
