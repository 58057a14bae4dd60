package tools

import (
	"time"

	"github.com/davral/llmrelay/internal/llm"
)

// datetimeTool reports the local process clock in ISO-8601 format.
// No timezone normalization is applied.
type datetimeTool struct{}

func (datetimeTool) Definition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        "get_current_datetime",
		Description: "Returns the current date and time in ISO 8601 format",
		Parameters: llm.ParameterSchema{
			Type:       "object",
			Properties: map[string]llm.PropertySchema{},
			Required:   []string{},
		},
	}
}

func (datetimeTool) Invoke(params map[string]any) (Result, error) {
	return Result{"datetime": time.Now().Format(time.RFC3339Nano)}, nil
}
