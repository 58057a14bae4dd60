package gateway

import (
	"github.com/davral/llmrelay/internal/tools"
)

// ChatMessage is one message in a conversation, in frontend order.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat. ConversationID is an opaque
// frontend identifier carried for correlation only; UserID gates debug
// disclosure and nothing else.
type ChatRequest struct {
	Messages       []ChatMessage `json:"messages"`
	ConversationID string        `json:"conversationId"`
	UserID         string        `json:"userId,omitempty"`
}

// ChatResponse is the body of a successful POST /api/chat. ToolsUsed stays
// empty: the downstream server executes tools inside its own loop and only
// the final text comes back.
type ChatResponse struct {
	Message   string         `json:"message"`
	ToolsUsed []string       `json:"toolsUsed,omitempty"`
	Debug     map[string]any `json:"debug,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Tools  int    `json:"tools"`
}

// ToolExecuteRequest is the body of POST /api/tools/execute.
type ToolExecuteRequest struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
}

// ToolExecuteResponse is the body of a successful POST /api/tools/execute.
type ToolExecuteResponse struct {
	Tool   string       `json:"tool"`
	Result tools.Result `json:"result"`
}

// ErrorShape is the error payload carried inside error responses.
type ErrorShape struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error ErrorShape `json:"error"`
}

// Error codes used at the HTTP boundary.
const (
	codeInvalidRequest        = "invalid_request"
	codeInvalidParameters     = "invalid_parameters"
	codeToolNotFound          = "tool_not_found"
	codeDownstreamUnavailable = "downstream_unavailable"
	codeDownstreamProtocol    = "downstream_protocol"
	codeInternal              = "internal_error"
	codeNotFound              = "not_found"
)
