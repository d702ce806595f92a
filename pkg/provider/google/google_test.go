package google_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/provider/google"

	"github.com/stretchr/testify/require"
)

func TestTranscribe(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/speech:recognize", r.URL.Path)
		require.Equal(t, "sk-test", r.URL.Query().Get("key"))

		var req struct {
			Config struct {
				LanguageCode string `json:"languageCode"`
				Model        string `json:"model"`
			} `json:"config"`

			Audio struct {
				Content string `json:"content"`
			} `json:"audio"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "de-DE", req.Config.LanguageCode)
		require.Equal(t, "latest_long", req.Config.Model)

		audio, err := base64.StdEncoding.DecodeString(req.Audio.Content)
		require.NoError(t, err)
		require.Equal(t, []byte("fake-audio"), audio)

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"alternatives": []map[string]any{{"transcript": "guten", "confidence": 0.98}}},
				{"alternatives": []map[string]any{{"transcript": "tag", "confidence": 0.97}}},
			},
		})
	}))
	defer server.Close()

	tr, err := google.NewTranscriber("latest_long", google.WithURL(server.URL))
	require.NoError(t, err)

	transcription, err := tr.Transcribe(ctx, provider.File{
		Name:    "audio.wav",
		Content: []byte("fake-audio"),
	}, &provider.TranscribeOptions{
		APIKey:   "sk-test",
		Language: "de-DE",
	})

	require.NoError(t, err)
	require.Equal(t, "guten tag", transcription.Text)
	require.Equal(t, "de-DE", transcription.Language)
}

func TestTranscribeEmptyAudio(t *testing.T) {
	ctx := context.Background()

	tr, err := google.NewTranscriber("latest_long")
	require.NoError(t, err)

	_, err = tr.Transcribe(ctx, provider.File{Name: "audio.wav"}, nil)
	require.True(t, provider.IsBadRequest(err))
}

func TestTranscribeErrorMapping(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	tr, err := google.NewTranscriber("", google.WithURL(server.URL))
	require.NoError(t, err)

	_, err = tr.Transcribe(ctx, provider.File{Content: []byte("x")}, nil)
	require.True(t, provider.IsAuth(err))
	require.Contains(t, err.Error(), "API key not valid")
}

func TestSynthesize(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/text:synthesize", r.URL.Path)

		var req struct {
			Input struct {
				Text string `json:"text"`
			} `json:"input"`

			Voice struct {
				LanguageCode string `json:"languageCode"`
				Name         string `json:"name"`
			} `json:"voice"`

			AudioConfig struct {
				AudioEncoding string `json:"audioEncoding"`
			} `json:"audioConfig"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "hello", req.Input.Text)
		require.Equal(t, "de-DE", req.Voice.LanguageCode)
		require.Equal(t, "de-DE-Neural2-B", req.Voice.Name)
		require.Equal(t, "MP3", req.AudioConfig.AudioEncoding)

		json.NewEncoder(w).Encode(map[string]string{
			"audioContent": base64.StdEncoding.EncodeToString([]byte("mp3-bytes")),
		})
	}))
	defer server.Close()

	s, err := google.NewSynthesizer("", google.WithURL(server.URL))
	require.NoError(t, err)

	synthesis, err := s.Synthesize(ctx, "hello", &provider.SynthesizeOptions{
		APIKey: "sk-test",
		Voice:  "de-DE-Neural2-B",
	})

	require.NoError(t, err)
	require.Equal(t, []byte("mp3-bytes"), synthesis.Content)
	require.Equal(t, "audio/mpeg", synthesis.ContentType)
}

func TestListCompleterModels(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{
				{
					"name":        "models/gemini-2.5-flash",
					"displayName": "Gemini 2.5 Flash",

					"inputTokenLimit":  1048576,
					"outputTokenLimit": 65536,

					"supportedGenerationMethods": []string{"generateContent"},
				},
				{
					"name":        "models/embedding-001",
					"displayName": "Embedding",

					"supportedGenerationMethods": []string{"embedContent"},
				},
				{
					"name":        "models/gemini-embedding-001",
					"displayName": "Gemini Embedding",

					"supportedGenerationMethods": []string{"embedContent"},
				},
			},
		})
	}))
	defer server.Close()

	c, err := google.NewCompleter("", google.WithURL(server.URL))
	require.NoError(t, err)

	models, err := c.ListModels(ctx, "sk-test")
	require.NoError(t, err)
	require.Len(t, models, 1)
	require.Equal(t, "gemini-2.5-flash", models[0].ID)
	require.Equal(t, 1048576, models[0].ContextWindow)
}

func TestListVoices(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/voices", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"voices": []map[string]any{
				{
					"name":          "en-US-Neural2-C",
					"languageCodes": []string{"en-US"},
					"ssmlGender":    "FEMALE",
				},
				{
					"name":          "de-DE-Neural2-B",
					"languageCodes": []string{"de-DE"},
					"ssmlGender":    "MALE",
				},
			},
		})
	}))
	defer server.Close()

	s, err := google.NewSynthesizer("", google.WithURL(server.URL))
	require.NoError(t, err)

	voices, err := s.ListVoices(ctx, "sk-test")
	require.NoError(t, err)
	require.Len(t, voices, 2)
	require.Equal(t, provider.GenderFemale, voices[0].Gender)
	require.Equal(t, "en-US", voices[0].Language)
	require.Equal(t, provider.GenderMale, voices[1].Gender)
}

func TestSpeechFallbackModels(t *testing.T) {
	tr, err := google.NewTranscriber("")
	require.NoError(t, err)

	s, err := google.NewSynthesizer("")
	require.NoError(t, err)

	require.NotEmpty(t, tr.FallbackModels())
	require.NotEmpty(t, s.FallbackModels())
	require.NotEmpty(t, s.FallbackVoices())
}
