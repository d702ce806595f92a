package speech_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/voquill/voquill/pkg/catalog"
	"github.com/voquill/voquill/pkg/kvstore"
	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/registry"
	"github.com/voquill/voquill/pkg/speech"

	"github.com/stretchr/testify/require"
)

type stubTranscriber struct {
	lastInput provider.File
}

func (s *stubTranscriber) Transcribe(ctx context.Context, input provider.File, options *provider.TranscribeOptions) (*provider.Transcription, error) {
	s.lastInput = input

	return &provider.Transcription{Text: "transcript of " + input.Name}, nil
}

func (s *stubTranscriber) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	return []provider.Model{{ID: "stub-stt-model"}}, nil
}

func (s *stubTranscriber) FallbackModels() []provider.Model {
	return []provider.Model{{ID: "stub-stt-model"}}
}

type stubSynthesizer struct{}

func (s *stubSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	return &provider.Synthesis{
		Content:     []byte("audio:" + input),
		ContentType: "audio/mpeg",
	}, nil
}

func (s *stubSynthesizer) ListVoices(ctx context.Context, apiKey string) ([]provider.Voice, error) {
	return []provider.Voice{{ID: "stub-voice", Name: "Stub", Gender: provider.GenderNeutral}}, nil
}

func (s *stubSynthesizer) FallbackVoices() []provider.Voice {
	return []provider.Voice{{ID: "stub-voice"}}
}

type stubCompleter struct{}

func (s *stubCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	return &provider.Completion{
		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: "reply",
		},
	}, nil
}

func (s *stubCompleter) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	return []provider.Model{{ID: "stub-llm-model"}}, nil
}

func (s *stubCompleter) FallbackModels() []provider.Model {
	return []provider.Model{{ID: "stub-llm-model"}}
}

type stubValidator struct {
	stubCompleter

	valid bool
}

func (s *stubValidator) ValidateConfig(ctx context.Context, config provider.Config) bool {
	return s.valid
}

func newService(t *testing.T) *speech.Service {
	t.Helper()

	stt := registry.NewSTT(func(r *registry.STT) {
		r.Register(registry.Descriptor{ID: "stub", Capability: provider.CapabilitySTT}, &stubTranscriber{})
	})

	tts := registry.NewTTS(func(r *registry.TTS) {
		r.Register(registry.Descriptor{ID: "stub", Capability: provider.CapabilityTTS}, &stubSynthesizer{})
	})

	llm := registry.NewLLM(func(r *registry.LLM) {
		r.Register(registry.Descriptor{ID: "stub", Capability: provider.CapabilityLLM}, &stubCompleter{})
		r.Register(registry.Descriptor{ID: "valid", Capability: provider.CapabilityLLM}, &stubValidator{valid: true})
		r.Register(registry.Descriptor{ID: "invalid", Capability: provider.CapabilityLLM}, &stubValidator{valid: false})
	})

	cat := catalog.New(kvstore.NewMemory())

	return speech.New(stt, tts, llm, cat, speech.WithOutputDir(t.TempDir()))
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, []byte("fake-audio"), 0o644))

	text, err := s.Transcribe(ctx, "stub", path, nil)
	require.NoError(t, err)
	require.Equal(t, "transcript of clip.wav", text)
}

func TestTranscribeUnknownProvider(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	_, err := s.Transcribe(ctx, "nope", "clip.wav", nil)
	require.True(t, provider.IsUnsupported(err))
}

func TestTranscribeMissingFile(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	_, err := s.Transcribe(ctx, "stub", filepath.Join(t.TempDir(), "absent.wav"), nil)
	require.True(t, provider.IsBadRequest(err))
}

func TestSynthesizeWritesFile(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	path, err := s.Synthesize(ctx, "stub", "hello", nil)
	require.NoError(t, err)
	require.Equal(t, ".mp3", filepath.Ext(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("audio:hello"), content)
}

func TestConcurrentSynthesizeUsesDistinctPaths(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	var mu sync.Mutex
	paths := make(map[string]bool)

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			path, err := s.Synthesize(ctx, "stub", "hello", nil)
			require.NoError(t, err)

			mu.Lock()
			paths[path] = true
			mu.Unlock()
		}()
	}

	wg.Wait()

	require.Len(t, paths, 16)
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	text, err := s.Complete(ctx, "stub", []provider.Message{provider.UserMessage("hi")}, nil)
	require.NoError(t, err)
	require.Equal(t, "reply", text)
}

func TestModelsAddressesOneFamily(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	models, err := s.Models(ctx, "stub", provider.CapabilitySTT, "key", false)
	require.NoError(t, err)
	require.Equal(t, "stub-stt-model", models[0].ID)

	// same id, llm family: its own list, not the cached stt one
	models, err = s.Models(ctx, "stub", provider.CapabilityLLM, "key", false)
	require.NoError(t, err)
	require.Equal(t, "stub-llm-model", models[0].ID)

	_, err = s.Models(ctx, "nope", provider.CapabilitySTT, "key", false)
	require.True(t, provider.IsUnsupported(err))
}

func TestVoices(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	voices, err := s.Voices(ctx, "stub", "key", false)
	require.NoError(t, err)
	require.Equal(t, "stub-voice", voices[0].ID)

	_, err = s.Voices(ctx, "nope", "key", false)
	require.True(t, provider.IsUnsupported(err))
}

func TestValidateConfig(t *testing.T) {
	ctx := context.Background()

	s := newService(t)

	require.True(t, s.ValidateConfig(ctx, "valid", provider.Config{APIKey: "k"}))
	require.False(t, s.ValidateConfig(ctx, "invalid", provider.Config{APIKey: "k"}))

	// unknown ids and providers without a validator report false
	require.False(t, s.ValidateConfig(ctx, "nope", provider.Config{APIKey: "k"}))
	require.False(t, s.ValidateConfig(ctx, "stub", provider.Config{APIKey: "k"}))
}
