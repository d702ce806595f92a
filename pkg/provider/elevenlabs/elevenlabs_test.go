package elevenlabs_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/provider/elevenlabs"

	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.True(t, strings.HasPrefix(r.URL.Path, "/v1/text-to-speech/"))
		require.Equal(t, "voice-1", strings.TrimPrefix(r.URL.Path, "/v1/text-to-speech/"))
		require.Equal(t, "sk-test", r.Header.Get("xi-api-key"))
		require.Equal(t, "mp3_44100_128", r.URL.Query().Get("output_format"))

		var body struct {
			Text    string `json:"text"`
			ModelID string `json:"model_id"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "hello there", body.Text)
		require.Equal(t, "eleven_multilingual_v2", body.ModelID)

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	s, err := elevenlabs.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	synthesis, err := s.Synthesize(ctx, "hello there", &provider.SynthesizeOptions{
		APIKey: "sk-test",
		Voice:  "voice-1",
	})

	require.NoError(t, err)
	require.Equal(t, []byte("mp3-bytes"), synthesis.Content)
	require.Equal(t, "audio/mpeg", synthesis.ContentType)
	require.Equal(t, "eleven_multilingual_v2", synthesis.Model)
}

func TestSynthesizeRejectsBadInputBeforeNetwork(t *testing.T) {
	ctx := context.Background()

	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	s, err := elevenlabs.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	_, err = s.Synthesize(ctx, "", nil)
	require.True(t, provider.IsBadRequest(err))

	_, err = s.Synthesize(ctx, strings.Repeat("a", provider.MaxSynthesizeInput+1), nil)
	require.True(t, provider.IsBadRequest(err))

	require.Zero(t, calls)
}

func TestSynthesizeErrorMapping(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, provider.IsAuth},
		{http.StatusTooManyRequests, provider.IsRateLimited},
		{http.StatusUnprocessableEntity, provider.IsBadRequest},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(`{"detail":{"message":"denied"}}`))
		}))

		s, err := elevenlabs.NewSynthesizer(server.URL, "")
		require.NoError(t, err)

		_, err = s.Synthesize(ctx, "hello", nil)
		require.True(t, tt.check(err))
		require.Contains(t, err.Error(), "denied")

		server.Close()
	}
}

func TestSynthesizeNetworkError(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	s, err := elevenlabs.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	_, err = s.Synthesize(ctx, "hello", nil)
	require.True(t, provider.IsNetwork(err))
}

func TestListModelsFiltersTextToSpeech(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/models", r.URL.Path)

		json.NewEncoder(w).Encode([]map[string]any{
			{
				"model_id": "eleven_multilingual_v2",
				"name":     "Eleven Multilingual v2",

				"can_do_text_to_speech": true,

				"languages": []map[string]string{{"language_id": "en"}, {"language_id": "de"}},
			},
			{
				"model_id": "eleven_english_sts_v2",
				"name":     "Voice Changer",

				"can_do_text_to_speech": false,
			},
		})
	}))
	defer server.Close()

	s, err := elevenlabs.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	models, err := s.ListModels(ctx, "sk-test")
	require.NoError(t, err)
	require.Len(t, models, 1)
	require.Equal(t, "eleven_multilingual_v2", models[0].ID)
	require.Equal(t, []string{"en", "de"}, models[0].Languages)
}

func TestListVoices(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/voices", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"voices": []map[string]any{
				{
					"voice_id": "v1",
					"name":     "Rachel",

					"labels": map[string]string{"gender": "female"},

					"preview_url": "https://example.com/rachel.mp3",
				},
				{
					"voice_id": "v2",
					"name":     "Adam",

					"labels": map[string]string{},
				},
			},
		})
	}))
	defer server.Close()

	s, err := elevenlabs.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	voices, err := s.ListVoices(ctx, "sk-test")
	require.NoError(t, err)
	require.Len(t, voices, 2)

	require.Equal(t, provider.GenderFemale, voices[0].Gender)
	require.Equal(t, "https://example.com/rachel.mp3", voices[0].PreviewURL)

	// no gender label, inferred from the name
	require.Equal(t, provider.GenderMale, voices[1].Gender)
}

func TestFallbacksAreNonEmpty(t *testing.T) {
	s, err := elevenlabs.NewSynthesizer("", "")
	require.NoError(t, err)

	require.NotEmpty(t, s.FallbackModels())
	require.NotEmpty(t, s.FallbackVoices())

	for _, v := range s.FallbackVoices() {
		require.NotEmpty(t, v.ID)
		require.NotEmpty(t, v.Name)
	}
}

func TestValidateConfig(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("xi-api-key") != "sk-good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{"voices": []any{}})
	}))
	defer server.Close()

	s, err := elevenlabs.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	require.True(t, s.ValidateConfig(ctx, provider.Config{APIKey: "sk-good"}))
	require.False(t, s.ValidateConfig(ctx, provider.Config{APIKey: "sk-bad"}))
}
