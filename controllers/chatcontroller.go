package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zarkopopovski/registrar-chat/chat"
	"github.com/zarkopopovski/registrar-chat/models"
	"github.com/zarkopopovski/registrar-chat/storage"
)

type ChatController struct {
	Coordinator        *chat.Coordinator
	Storage            storage.Storage
	ProviderConfigured bool
}

type createMessageRequest struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
	IsUser    bool   `json:"is_user"`
}

func (chatController *ChatController) Health(w http.ResponseWriter, r *http.Request) {
	providerStatus := "not configured"
	if chatController.ProviderConfigured {
		providerStatus = "connected"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"provider":  providerStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetMessages returns the conversation for sessionId, or every message when
// the query parameter is absent.
func (chatController *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")

	messages, err := chatController.Coordinator.Conversation(sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch messages")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// PostMessage creates a message and responds with it immediately. User
// messages additionally kick off the asynchronous bot reply; the client
// picks the reply up on a later poll.
func (chatController *ChatController) PostMessage(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var payload createMessageRequest
	if err := json.Unmarshal(b, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid message format"})
		return
	}

	if payload.IsUser {
		message, err := chatController.Coordinator.Submit(r.Context(), payload.SessionID, payload.Content)
		if err != nil {
			if errors.Is(err, chat.ErrEmptyMessage) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message content is required"})
				return
			}
			log.Error().Err(err).Msg("failed to create message")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create message"})
			return
		}

		writeJSON(w, http.StatusOK, message)
		return
	}

	message, err := chatController.Storage.CreateMessage(&models.Message{
		SessionID: payload.SessionID,
		Content:   payload.Content,
		IsUser:    false,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create message")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create message"})
		return
	}

	writeJSON(w, http.StatusOK, message)
}

// ClearMessages clears one session when sessionId is given, otherwise the
// whole store. Either way the matching epoch is bumped so in-flight replies
// for the cleared scope are discarded.
func (chatController *ChatController) ClearMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")

	if sessionID != "" {
		if err := chatController.Coordinator.Clear(sessionID); err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Msg("failed to clear session")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to clear messages"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":   true,
			"message":   "Session messages cleared",
			"sessionId": sessionID,
		})
		return
	}

	if err := chatController.Coordinator.ClearAll(); err != nil {
		log.Error().Err(err).Msg("failed to clear messages")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to clear messages"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "All messages cleared",
	})
}

// SessionInfo exposes the fencing counters and provider availability for
// the widget's diagnostics view.
func (chatController *ChatController) SessionInfo(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")

	globalEpoch, sessionEpoch := chatController.Coordinator.Epochs(sessionID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"epoch":               globalEpoch,
		"session_epoch":       sessionEpoch,
		"provider_configured": chatController.ProviderConfigured,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
