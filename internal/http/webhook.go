// Package http exposes the inbound webhook shell. The core receives one
// text per request and returns one plain-text reply; the messaging
// provider wraps that body into its channel envelope.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// MessageHandler is the pipeline seam (satisfied by *agent.Assistant).
type MessageHandler interface {
	HandleMessage(ctx context.Context, senderID, text string) (string, error)
}

// neutralAck is sent when the pipeline fails. A calm 200 body instead of
// a raw error keeps channel providers from retry-storming the endpoint.
const neutralAck = "I hit a snag handling that one. Give me a moment and try again."

// WebhookHandler handles POST /webhook.
type WebhookHandler struct {
	assistant MessageHandler
	token     string // expected bearer token (empty = no auth)
}

func NewWebhookHandler(assistant MessageHandler, token string) *WebhookHandler {
	return &WebhookHandler{assistant: assistant, token: token}
}

// inboundMessage is the JSON form of the webhook body. Form-encoded
// bodies use From/Body (the common messaging-provider shape) with
// senderId/text accepted as aliases.
type inboundMessage struct {
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !tokenMatch(extractBearerToken(r), h.token) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	senderID, text, ok := parseInbound(r)
	if !ok {
		http.Error(w, "missing sender id", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(text) == "" {
		w.WriteHeader(http.StatusNoContent) // empty text is a no-op
		return
	}

	reply, err := h.assistant.HandleMessage(r.Context(), senderID, text)
	if err != nil {
		slog.Error("webhook: request failed", "sender", senderID, "error", err)
		writeText(w, neutralAck)
		return
	}
	if reply == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeText(w, reply)
}

func parseInbound(r *http.Request) (senderID, text string, ok bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var msg inboundMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			return "", "", false
		}
		if msg.SenderID == "" {
			return "", "", false
		}
		return msg.SenderID, msg.Text, true
	}

	if err := r.ParseForm(); err != nil {
		return "", "", false
	}
	senderID = r.PostFormValue("From")
	if senderID == "" {
		senderID = r.PostFormValue("senderId")
	}
	if senderID == "" {
		return "", "", false
	}
	text = r.PostFormValue("Body")
	if text == "" {
		text = r.PostFormValue("text")
	}
	return senderID, text, true
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
