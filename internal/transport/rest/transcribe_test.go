package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ipa-transcriber/internal/config"
	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

type mockTranscriptionService struct {
	TranscribeFunc func(ctx context.Context, input string, opts domain.TranscriptionOptions) (*domain.TranscriptionResult, error)
	LookupFunc     func(ctx context.Context, word string, dialect domain.Dialect) (domain.ParsedForm, error)
}

func (m *mockTranscriptionService) Transcribe(ctx context.Context, input string, opts domain.TranscriptionOptions) (*domain.TranscriptionResult, error) {
	return m.TranscribeFunc(ctx, input, opts)
}

func (m *mockTranscriptionService) Lookup(ctx context.Context, word string, dialect domain.Dialect) (domain.ParsedForm, error) {
	return m.LookupFunc(ctx, word, dialect)
}

func newTestHandler(svc transcriptionService) *TranscribeHandler {
	cfg := config.TranscriptionConfig{DefaultDialect: "rp", MaxInputChars: 100}
	return NewTranscribeHandler(svc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doTranscribe(t *testing.T, h *TranscribeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Transcribe(rec, req)
	return rec
}

func TestTranscribe_Success(t *testing.T) {
	t.Parallel()

	var gotOpts domain.TranscriptionOptions
	svc := &mockTranscriptionService{
		TranscribeFunc: func(_ context.Context, input string, opts domain.TranscriptionOptions) (*domain.TranscriptionResult, error) {
			gotOpts = opts
			assert.Equal(t, "the apple", input)
			return &domain.TranscriptionResult{IPA: "ði æpl"}, nil
		},
	}

	rec := doTranscribe(t, newTestHandler(svc), `{"text": "the apple"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transcribeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ði æpl", resp.IPA)
	assert.Equal(t, "the apple", resp.Text)
	assert.Equal(t, "rp", resp.Dialect, "default dialect comes from config")
	assert.Equal(t, []string{}, resp.NotFound, "notFound is never null")

	assert.True(t, gotOpts.UseWeakForms, "weak forms default on")
	assert.False(t, gotOpts.IgnoreStress)
	assert.Equal(t, domain.DialectRP, gotOpts.Dialect)
}

func TestTranscribe_OptionsPassedThrough(t *testing.T) {
	t.Parallel()

	var gotOpts domain.TranscriptionOptions
	svc := &mockTranscriptionService{
		TranscribeFunc: func(_ context.Context, _ string, opts domain.TranscriptionOptions) (*domain.TranscriptionResult, error) {
			gotOpts = opts
			return &domain.TranscriptionResult{IPA: "x"}, nil
		},
	}

	body := `{"text": "x", "dialect": "american", "useWeakForms": false, "ignoreStress": true}`
	rec := doTranscribe(t, newTestHandler(svc), body)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, domain.DialectAmerican, gotOpts.Dialect)
	assert.False(t, gotOpts.UseWeakForms)
	assert.True(t, gotOpts.IgnoreStress)
}

func TestTranscribe_BadRequests(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		TranscribeFunc: func(_ context.Context, _ string, _ domain.TranscriptionOptions) (*domain.TranscriptionResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := newTestHandler(svc)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{`},
		{name: "empty text", body: `{"text": ""}`},
		{name: "unknown dialect", body: `{"text": "hi", "dialect": "klingon"}`},
		{name: "text too long", body: `{"text": "` + strings.Repeat("a", 101) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doTranscribe(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTranscribe_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: domain.NewValidationError("dialect", "bad"), want: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &mockTranscriptionService{
				TranscribeFunc: func(_ context.Context, _ string, _ domain.TranscriptionOptions) (*domain.TranscriptionResult, error) {
					return nil, tt.err
				},
			}
			rec := doTranscribe(t, newTestHandler(svc), `{"text": "hi"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLookup_SingleForm(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		LookupFunc: func(_ context.Context, word string, dialect domain.Dialect) (domain.ParsedForm, error) {
			assert.Equal(t, "Car", word)
			assert.Equal(t, domain.DialectAmerican, dialect)
			return domain.ParsedForm{Single: "kɑr"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/ipa?word=Car&dialect=american", nil)
	rec := httptest.NewRecorder()
	newTestHandler(svc).Lookup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp lookupResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "car", resp.Word)
	assert.True(t, resp.Found)
	assert.Equal(t, "kɑr", resp.Primary)
	assert.Nil(t, resp.Secondary)
}

func TestLookup_DualForm(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		LookupFunc: func(_ context.Context, _ string, _ domain.Dialect) (domain.ParsedForm, error) {
			return domain.ParsedForm{Strong: "hæv", Weak: "əv", Dual: true}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/ipa?word=have", nil)
	rec := httptest.NewRecorder()
	newTestHandler(svc).Lookup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp lookupResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "hæv", resp.Primary)
	require.NotNil(t, resp.Secondary)
	assert.Equal(t, "hæv", resp.Secondary.Strong)
	assert.Equal(t, "əv", resp.Secondary.Weak)
}

func TestLookup_NotFoundIsNotAnError(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		LookupFunc: func(_ context.Context, _ string, _ domain.Dialect) (domain.ParsedForm, error) {
			return domain.ParsedForm{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/ipa?word=zzzz", nil)
	rec := httptest.NewRecorder()
	newTestHandler(svc).Lookup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp lookupResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Primary)
}

func TestLookup_BadRequests(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		LookupFunc: func(_ context.Context, _ string, _ domain.Dialect) (domain.ParsedForm, error) {
			t.Fatal("service must not be called")
			return domain.ParsedForm{}, nil
		},
	}
	h := newTestHandler(svc)

	for _, target := range []string{"/ipa", "/ipa?word=hi&dialect=nope"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.Lookup(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
