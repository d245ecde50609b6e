package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthassist/internal/repository"
	"healthassist/internal/service"
)

// Handler exposes the chat engine and stored transcripts over HTTP.
type Handler struct {
	chat        service.ChatService
	transcripts service.TranscriptService
	profiles    service.ProfileService
}

// NewHandler creates a Handler over the given services.
func NewHandler(chat service.ChatService, transcripts service.TranscriptService, profiles service.ProfileService) *Handler {
	return &Handler{chat: chat, transcripts: transcripts, profiles: profiles}
}

type messageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	SessionID string        `json:"session_id"`
	Reply     string        `json:"reply"`
	Step      string        `json:"step"`
	Analysis  *analysisBody `json:"analysis,omitempty"`
	Entities  []entityBody  `json:"entities,omitempty"`
	Intent    *intentBody   `json:"intent,omitempty"`
}

type analysisBody struct {
	Symptoms        []string `json:"symptoms"`
	Severity        string   `json:"severity"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

type entityBody struct {
	Kind       string  `json:"kind"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

type intentBody struct {
	Intent     string   `json:"intent"`
	Confidence float64  `json:"confidence"`
	SubIntents []string `json:"sub_intents,omitempty"`
}

func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "text must not be empty", http.StatusBadRequest)
		return
	}

	turn, err := h.chat.SubmitUtterance(r.Context(), req.Text)
	if err != nil {
		http.Error(w, "processing failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := messageResponse{
		SessionID: h.chat.SessionID(),
		Reply:     turn.BotMessage.Content,
		Step:      string(turn.Step),
	}
	// The intent is empty on onboarding turns, where no analysis ran.
	if turn.Intent.Intent != "" {
		symptoms := make([]string, len(turn.Analysis.DetectedSymptoms))
		for i, record := range turn.Analysis.DetectedSymptoms {
			symptoms[i] = record.Name
		}
		resp.Analysis = &analysisBody{
			Symptoms:        symptoms,
			Severity:        string(turn.Analysis.Severity),
			Confidence:      turn.Analysis.Confidence,
			Recommendations: turn.Analysis.Recommendations,
		}
		for _, e := range turn.Entities {
			resp.Entities = append(resp.Entities, entityBody{
				Kind:       string(e.Kind),
				Value:      e.Value,
				Confidence: e.Confidence,
			})
		}
		subs := make([]string, len(turn.Intent.SubIntents))
		for i, sub := range turn.Intent.SubIntents {
			subs[i] = string(sub)
		}
		resp.Intent = &intentBody{
			Intent:     string(turn.Intent.Intent),
			Confidence: turn.Intent.Confidence,
			SubIntents: subs,
		}
	}
	writeJSON(w, resp)
}

func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	intro, err := h.chat.Reset(r.Context())
	if err != nil {
		http.Error(w, "reset failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{
		"session_id": h.chat.SessionID(),
		"reply":      intro.Content,
	})
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.transcripts.ListSessions(r.Context(), 0)
	if err != nil {
		http.Error(w, "listing sessions failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, sessions)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	messages, err := h.transcripts.ListMessages(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "listing messages failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, messages)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	profile, err := h.profiles.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "loading profile failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, profile)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding response failed", http.StatusInternalServerError)
	}
}

// RegisterRoutes mounts the API under the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/messages", h.SubmitMessage)
	r.Post("/reset", h.ResetSession)
	r.Get("/sessions", h.ListSessions)
	r.Get("/sessions/{sessionID}/messages", h.ListMessages)
	r.Get("/sessions/{sessionID}/profile", h.GetProfile)
}
