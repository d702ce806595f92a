package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voquill/voquill/pkg/catalog"
	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/registry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/voquill/voquill"

// Per-operation deadlines. Validation probes are short, audio payloads get
// room to upload.
const (
	ValidateTimeout   = 5 * time.Second
	TranscribeTimeout = 60 * time.Second
	SynthesizeTimeout = 60 * time.Second
	CompleteTimeout   = 120 * time.Second
)

// Service is the single entry point consumed by the application: registry
// lookup, catalog access and capability calls behind one API.
type Service struct {
	stt *registry.STT
	tts *registry.TTS
	llm *registry.LLM

	catalog *catalog.Service

	outputDir string

	logger *slog.Logger

	errors metric.Int64Counter
}

type Option func(*Service)

func WithOutputDir(dir string) Option {
	return func(s *Service) {
		s.outputDir = dir
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(stt *registry.STT, tts *registry.TTS, llm *registry.LLM, cat *catalog.Service, options ...Option) *Service {
	s := &Service{
		stt: stt,
		tts: tts,
		llm: llm,

		catalog: cat,

		outputDir: os.TempDir(),

		logger: slog.Default(),
	}

	for _, option := range options {
		option(s)
	}

	meter := otel.Meter(instrumentationName)

	s.errors, _ = meter.Int64Counter("speech.errors",
		metric.WithDescription("Provider call failures by provider and error kind"))

	return s
}

func (s *Service) STT() *registry.STT {
	return s.stt
}

func (s *Service) TTS() *registry.TTS {
	return s.tts
}

func (s *Service) LLM() *registry.LLM {
	return s.llm
}

func (s *Service) Catalog() *catalog.Service {
	return s.catalog
}

func (s *Service) fail(ctx context.Context, id string, err error) error {
	s.errors.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("provider", id),
			attribute.String("kind", string(provider.KindOf(err))),
		))

	return err
}

// Transcribe reads the audio file at path and returns the transcript from
// the given STT provider.
func (s *Service) Transcribe(ctx context.Context, id, path string, options *provider.TranscribeOptions) (string, error) {
	transcriber, ok := s.stt.Get(id)

	if !ok {
		return "", provider.NewError(provider.ErrorUnsupported, id, "provider not found")
	}

	content, err := os.ReadFile(path)

	if err != nil {
		return "", provider.WrapError(provider.ErrorBadRequest, id, err)
	}

	input := provider.File{
		Name: filepath.Base(path),

		Content:     content,
		ContentType: audioContentType(path),
	}

	ctx, cancel := context.WithTimeout(ctx, TranscribeTimeout)
	defer cancel()

	transcription, err := transcriber.Transcribe(ctx, input, options)

	if err != nil {
		return "", s.fail(ctx, id, err)
	}

	return transcription.Text, nil
}

// Synthesize renders text with the given TTS provider and writes the audio
// to a uniquely named file in the output directory, returning its path.
// Concurrent calls never collide on a name.
func (s *Service) Synthesize(ctx context.Context, id, text string, options *provider.SynthesizeOptions) (string, error) {
	synthesizer, ok := s.tts.Get(id)

	if !ok {
		return "", provider.NewError(provider.ErrorUnsupported, id, "provider not found")
	}

	ctx, cancel := context.WithTimeout(ctx, SynthesizeTimeout)
	defer cancel()

	synthesis, err := synthesizer.Synthesize(ctx, text, options)

	if err != nil {
		return "", s.fail(ctx, id, err)
	}

	name := fmt.Sprintf("%s-%d-%s%s", id, time.Now().UnixNano(), uuid.NewString()[:8], audioExtension(synthesis.ContentType))

	path := filepath.Join(s.outputDir, name)

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", s.fail(ctx, id, provider.WrapError(provider.ErrorUnknown, id, err))
	}

	if err := os.WriteFile(path, synthesis.Content, 0o644); err != nil {
		return "", s.fail(ctx, id, provider.WrapError(provider.ErrorUnknown, id, err))
	}

	return path, nil
}

// Complete runs a chat completion with the given LLM provider and returns
// the assistant text.
func (s *Service) Complete(ctx context.Context, id string, messages []provider.Message, options *provider.CompleteOptions) (string, error) {
	completer, ok := s.llm.Get(id)

	if !ok {
		return "", provider.NewError(provider.ErrorUnsupported, id, "provider not found")
	}

	ctx, cancel := context.WithTimeout(ctx, CompleteTimeout)
	defer cancel()

	completion, err := completer.Complete(ctx, messages, options)

	if err != nil {
		return "", s.fail(ctx, id, err)
	}

	if completion.Message == nil {
		return "", nil
	}

	return completion.Message.Content, nil
}

// Models returns the model list of one provider in one capability family
// through the catalog cache. Multi-capability vendors carry a distinct list
// per family, addressed explicitly.
func (s *Service) Models(ctx context.Context, id string, capability provider.Capability, apiKey string, force bool) ([]provider.Model, error) {
	cat, ok := s.modelCatalog(id, capability)

	if !ok {
		return nil, provider.NewError(provider.ErrorUnsupported, id, "provider has no model catalog")
	}

	return s.catalog.Models(ctx, id, capability, apiKey, cat, force)
}

// Voices is the voice counterpart of Models, for TTS providers.
func (s *Service) Voices(ctx context.Context, id, apiKey string, force bool) ([]provider.Voice, error) {
	synthesizer, ok := s.tts.Get(id)

	if !ok {
		return nil, provider.NewError(provider.ErrorUnsupported, id, "provider not found")
	}

	cat, ok := synthesizer.(provider.VoiceCatalog)

	if !ok {
		return nil, provider.NewError(provider.ErrorUnsupported, id, "provider has no voice catalog")
	}

	return s.catalog.Voices(ctx, id, apiKey, cat, force)
}

// ValidateConfig probes a provider with the given credentials. It never
// fails hard: any error, including an unknown id, reports false.
func (s *Service) ValidateConfig(ctx context.Context, id string, config provider.Config) bool {
	validator, ok := s.validator(id)

	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, ValidateTimeout)
	defer cancel()

	return validator.ValidateConfig(ctx, config)
}

func (s *Service) modelCatalog(id string, capability provider.Capability) (provider.ModelCatalog, bool) {
	switch capability {
	case provider.CapabilitySTT:
		if t, ok := s.stt.Get(id); ok {
			if cat, ok := t.(provider.ModelCatalog); ok {
				return cat, true
			}
		}

	case provider.CapabilityTTS:
		if t, ok := s.tts.Get(id); ok {
			if cat, ok := t.(provider.ModelCatalog); ok {
				return cat, true
			}
		}

	case provider.CapabilityLLM:
		if c, ok := s.llm.Get(id); ok {
			if cat, ok := c.(provider.ModelCatalog); ok {
				return cat, true
			}
		}
	}

	return nil, false
}

func (s *Service) validator(id string) (provider.Validator, bool) {
	if t, ok := s.stt.Get(id); ok {
		if v, ok := t.(provider.Validator); ok {
			return v, true
		}
	}

	if t, ok := s.tts.Get(id); ok {
		if v, ok := t.(provider.Validator); ok {
			return v, true
		}
	}

	if c, ok := s.llm.Get(id); ok {
		if v, ok := c.(provider.Validator); ok {
			return v, true
		}
	}

	return nil, false
}

func audioContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"

	case ".wav":
		return "audio/wav"

	case ".m4a":
		return "audio/mp4"

	case ".ogg", ".oga":
		return "audio/ogg"

	case ".flac":
		return "audio/flac"

	case ".webm":
		return "audio/webm"
	}

	return "application/octet-stream"
}

func audioExtension(contentType string) string {
	switch contentType {
	case "audio/mpeg":
		return ".mp3"

	case "audio/wav":
		return ".wav"

	case "audio/ogg":
		return ".ogg"
	}

	return ".bin"
}
