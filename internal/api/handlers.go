package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"concierge/pkg/models"
)

type ChatRequest struct {
	Messages []models.ChatMessage `json:"messages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error().Err(err).Msg("malformed chat request")
		s.writeError(w, "Failed to process chat request", http.StatusInternalServerError)
		return
	}

	content, err := s.responder.Reply(r.Context(), req.Messages)
	if err != nil {
		s.logger.Error().Err(err).Msg("chat error")
		s.writeError(w, "Failed to process chat request", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, models.ChatMessage{
		ID:      uuid.New().String(),
		Role:    "assistant",
		Content: content,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
