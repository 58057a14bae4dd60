package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/davral/llmrelay/internal/llm"
	"github.com/davral/llmrelay/internal/tools"
)

// handleChat relays a conversation to the downstream LLM server and returns
// the assistant's final text. The full tool catalog rides along on every
// call; the downstream server decides whether and how to use it.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.llm == nil {
		writeError(w, http.StatusInternalServerError, ErrorShape{
			Code:    codeInternal,
			Message: "no downstream LLM client configured",
		})
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorShape{
			Code:    codeInvalidRequest,
			Message: "invalid chat request: " + err.Error(),
		})
		return
	}

	// Forward role and content only, in conversation order.
	messages := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	content, err := s.llm.Complete(r.Context(), messages, s.catalog.Definitions())
	if err != nil {
		s.log.Error().Err(err).Str("conversationId", req.ConversationID).Msg("chat relay failed")
		writeError(w, chatErrorStatus(err), chatErrorShape(err))
		return
	}

	resp := ChatResponse{Message: content}
	if s.cfg.Debug.UserID != "" && req.UserID == s.cfg.Debug.UserID {
		resp.Debug = map[string]any{
			"model":           s.cfg.LLM.Model,
			"tools_available": s.catalog.Len(),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// chatErrorStatus maps relay failures to a 500-class status: the downstream
// server being unreachable or misbehaving is a gateway problem, everything
// else is internal.
func chatErrorStatus(err error) int {
	switch {
	case errors.Is(err, llm.ErrUnavailable), errors.Is(err, llm.ErrMalformed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func chatErrorShape(err error) ErrorShape {
	switch {
	case errors.Is(err, llm.ErrUnavailable):
		return ErrorShape{Code: codeDownstreamUnavailable, Message: "LLM server error: " + err.Error()}
	case errors.Is(err, llm.ErrMalformed):
		return ErrorShape{Code: codeDownstreamProtocol, Message: err.Error()}
	default:
		return ErrorShape{Code: codeInternal, Message: err.Error()}
	}
}

// handleHealth reports a fixed healthy status with the configured model and
// catalog size. No failure path.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "healthy",
		Model:  s.cfg.LLM.Model,
		Tools:  s.catalog.Len(),
	})
}

// handleToolExecute runs a catalog tool directly, bypassing the downstream
// server entirely. Used for testing tools outside the chat flow.
func (s *Server) handleToolExecute(w http.ResponseWriter, r *http.Request) {
	var req ToolExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorShape{
			Code:    codeInvalidRequest,
			Message: "invalid tool execution request: " + err.Error(),
		})
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, ErrorShape{
			Code:    codeInvalidRequest,
			Message: "tool name is required",
		})
		return
	}

	result, err := s.catalog.Execute(req.Name, req.Parameters)
	if err != nil {
		switch {
		case errors.Is(err, tools.ErrNotFound):
			writeError(w, http.StatusNotFound, ErrorShape{
				Code:    codeToolNotFound,
				Message: "tool " + req.Name + " not found",
			})
		case errors.Is(err, tools.ErrInvalidParams):
			writeError(w, http.StatusBadRequest, ErrorShape{
				Code:    codeInvalidParameters,
				Message: err.Error(),
			})
		default:
			writeError(w, http.StatusInternalServerError, ErrorShape{
				Code:    codeInternal,
				Message: err.Error(),
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, ToolExecuteResponse{Tool: req.Name, Result: result})
}

// handleNotFound returns a 404 for unknown routes.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, ErrorShape{
		Code:    codeNotFound,
		Message: "no such route: " + r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, shape ErrorShape) {
	writeJSON(w, status, errorResponse{Error: shape})
}
