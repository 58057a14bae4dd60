package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davral/llmrelay/internal/llm"
)

// allowedExprChars is the character allow-list checked before parsing.
// Anything outside it is rejected as data, never as an error return.
const allowedExprChars = "0123456789+-*/()%. "

// calculatorTool evaluates restricted arithmetic expressions with a
// dedicated parser. Only + - * / % ( ) and decimal literals are accepted;
// there is no general expression evaluation behind the allow-list.
type calculatorTool struct{}

func (calculatorTool) Definition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        "calculator",
		Description: "Calculate mathematical expressions safely",
		Parameters: llm.ParameterSchema{
			Type: "object",
			Properties: map[string]llm.PropertySchema{
				"expression": {
					Type:        "string",
					Description: "Mathematical expression to evaluate",
				},
			},
			Required: []string{"expression"},
		},
	}
}

func (calculatorTool) Invoke(params map[string]any) (Result, error) {
	raw, ok := params["expression"]
	if !ok {
		return nil, errors.New("missing required parameter: expression")
	}
	expr, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("expression must be a string, got %T", raw)
	}

	for _, r := range expr {
		if !strings.ContainsRune(allowedExprChars, r) {
			return Result{"error": "Invalid expression"}, nil
		}
	}

	val, err := evaluate(expr)
	if err != nil {
		return Result{"error": err.Error()}, nil
	}
	return Result{"result": val}, nil
}
