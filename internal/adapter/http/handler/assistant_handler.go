package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jokobim12/tefanote/internal/adapter/http/dto"
)

// AssistantService defines the behavior needed by AssistantHandler.
type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
}

// AssistantHandler handles assistant chat HTTP requests.
type AssistantHandler struct {
	assistantUC AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantUC AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantUC: assistantUC}
}

// Chat forwards one user message to the assistant.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "empty message", "")
		return
	}

	reply, err := h.assistantUC.Chat(r.Context(), req.Message)
	if err != nil {
		writeError(w, mapDomainError(err), "assistant unavailable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ChatResponse{Reply: reply})
}
