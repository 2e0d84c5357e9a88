package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/heartmarshall/ipa-transcriber/internal/config"
	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

// transcriptionService defines the service contract consumed by the handler.
// Implemented by transcription.Service.
type transcriptionService interface {
	Transcribe(ctx context.Context, input string, opts domain.TranscriptionOptions) (*domain.TranscriptionResult, error)
	Lookup(ctx context.Context, word string, dialect domain.Dialect) (domain.ParsedForm, error)
}

// TranscribeHandler serves the transcription endpoints.
type TranscribeHandler struct {
	svc transcriptionService
	cfg config.TranscriptionConfig
	log *slog.Logger
}

// NewTranscribeHandler creates a TranscribeHandler.
func NewTranscribeHandler(svc transcriptionService, cfg config.TranscriptionConfig, log *slog.Logger) *TranscribeHandler {
	return &TranscribeHandler{
		svc: svc,
		cfg: cfg,
		log: log.With(slog.String("handler", "transcribe")),
	}
}

type transcribeRequest struct {
	Text         string `json:"text"`
	Dialect      string `json:"dialect"`
	UseWeakForms *bool  `json:"useWeakForms"`
	IgnoreStress bool   `json:"ignoreStress"`
}

type transcribeOptions struct {
	UseWeakForms bool `json:"useWeakForms"`
	IgnoreStress bool `json:"ignoreStress"`
}

type transcribeResponse struct {
	Text     string            `json:"text"`
	Dialect  string            `json:"dialect"`
	IPA      string            `json:"ipa"`
	NotFound []string          `json:"notFound"`
	Options  transcribeOptions `json:"options"`
}

type dualFormResponse struct {
	Strong string `json:"strong"`
	Weak   string `json:"weak"`
}

type lookupResponse struct {
	Word      string            `json:"word"`
	Dialect   string            `json:"dialect"`
	Found     bool              `json:"found"`
	Primary   string            `json:"primary,omitempty"`
	Secondary *dualFormResponse `json:"secondary,omitempty"`
}

// Transcribe handles POST /transcribe.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if max := h.cfg.MaxInputChars; utf8.RuneCountInString(req.Text) > max {
		writeError(w, http.StatusBadRequest, "text exceeds the maximum input length")
		return
	}

	dialect, ok := h.resolveDialect(req.Dialect)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown dialect")
		return
	}

	opts := domain.TranscriptionOptions{
		Dialect:      dialect,
		UseWeakForms: req.UseWeakForms == nil || *req.UseWeakForms,
		IgnoreStress: req.IgnoreStress,
	}

	result, err := h.svc.Transcribe(r.Context(), req.Text, opts)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	notFound := result.NotFound
	if notFound == nil {
		notFound = []string{}
	}

	writeJSON(w, http.StatusOK, transcribeResponse{
		Text:     req.Text,
		Dialect:  dialect.String(),
		IPA:      result.IPA,
		NotFound: notFound,
		Options: transcribeOptions{
			UseWeakForms: opts.UseWeakForms,
			IgnoreStress: opts.IgnoreStress,
		},
	})
}

// Lookup handles GET /ipa. A word missing from the lexicon is not an error:
// the response carries found=false so clients can distinguish it from a
// malformed request.
func (h *TranscribeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word query parameter is required")
		return
	}

	dialect, ok := h.resolveDialect(r.URL.Query().Get("dialect"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown dialect")
		return
	}

	form, err := h.svc.Lookup(r.Context(), word, dialect)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, lookupResponse{
				Word:    domain.NormalizeWord(word),
				Dialect: dialect.String(),
				Found:   false,
			})
			return
		}
		h.handleError(w, r, err)
		return
	}

	resp := lookupResponse{
		Word:    domain.NormalizeWord(word),
		Dialect: dialect.String(),
		Found:   true,
	}
	if form.Dual {
		resp.Primary = form.Strong
		resp.Secondary = &dualFormResponse{Strong: form.Strong, Weak: form.Weak}
	} else {
		resp.Primary = form.Single
	}

	writeJSON(w, http.StatusOK, resp)
}

// resolveDialect parses the request dialect, falling back to the configured
// default when the request leaves it empty.
func (h *TranscribeHandler) resolveDialect(raw string) (domain.Dialect, bool) {
	if raw == "" {
		raw = h.cfg.DefaultDialect
	}
	return domain.ParseDialect(raw)
}

func (h *TranscribeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
