package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/voquill/voquill/pkg/kvstore"
	"github.com/voquill/voquill/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"
)

const instrumentationName = "github.com/voquill/voquill"

const (
	DefaultTTL     = 24 * time.Hour
	DefaultTimeout = 10 * time.Second
)

const (
	KindModels = "model-cache"
	KindVoices = "voice-cache"
)

// Entry is one persisted catalog snapshot. An entry is valid iff
// now - FetchedAt < TTL; expired entries are deleted on read, never returned.
type Entry struct {
	Data json.RawMessage `json:"data"`

	FetchedAt int64 `json:"fetched_at_ms"`
	TTL       int64 `json:"ttl_ms"`
}

// Service fetches, normalizes, caches and falls back model/voice catalogs.
// Fetch failures are absorbed: a caller always receives the newest good data,
// with the compiled-in fallback list as the floor.
type Service struct {
	store kvstore.Store

	ttl     time.Duration
	timeout time.Duration

	logger *slog.Logger

	now func() time.Time

	group singleflight.Group

	fallbacks metric.Int64Counter

	mu       sync.RWMutex
	inflight map[string]bool

	models map[string][]provider.Model
	voices map[string][]provider.Voice
}

type Option func(*Service)

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.ttl = ttl
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source, for TTL tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(store kvstore.Store, options ...Option) *Service {
	s := &Service{
		store: store,

		ttl:     DefaultTTL,
		timeout: DefaultTimeout,

		logger: slog.Default(),

		now: time.Now,

		inflight: make(map[string]bool),

		models: make(map[string][]provider.Model),
		voices: make(map[string][]provider.Voice),
	}

	for _, option := range options {
		option(s)
	}

	meter := otel.Meter(instrumentationName)

	s.fallbacks, _ = meter.Int64Counter("catalog.fallbacks",
		metric.WithDescription("Catalog fetches that fell back to cached or static data"))

	return s
}

// Models returns the effective model list for one provider in one capability
// family. Entries are keyed per (provider, capability): vendors registered
// under the same id across families never see each other's lists.
func (s *Service) Models(ctx context.Context, id string, capability provider.Capability, apiKey string, catalog provider.ModelCatalog, force bool) ([]provider.Model, error) {
	return fetch(s, ctx, modelKey(id, capability), id, capability, apiKey, force, s.models, catalog.ListModels, catalog.FallbackModels)
}

// Voices is the voice counterpart of Models. Voices only exist for TTS, one
// entry per provider.
func (s *Service) Voices(ctx context.Context, id, apiKey string, catalog provider.VoiceCatalog, force bool) ([]provider.Voice, error) {
	return fetch(s, ctx, voiceKey(id), id, provider.CapabilityTTS, apiKey, force, s.voices, catalog.ListVoices, catalog.FallbackVoices)
}

func fetch[T any](
	s *Service,
	ctx context.Context,
	key, id string,
	capability provider.Capability,
	apiKey string,
	force bool,
	snapshots map[string][]T,
	list func(context.Context, string) ([]T, error),
	fallback func() []T,
) ([]T, error) {
	flight := key + "\x00" + apiKey

	if !force {
		if data, ok := s.readEntry(ctx, key); ok {
			var cached []T

			if err := json.Unmarshal(data, &cached); err == nil && len(cached) > 0 {
				s.mu.Lock()
				snapshots[key] = cached
				s.mu.Unlock()

				return cached, nil
			}
		}

		s.mu.RLock()
		busy := s.inflight[flight]
		snapshot, ok := snapshots[key]
		s.mu.RUnlock()

		// a refresh is already underway, serve what we have
		if busy && ok {
			return snapshot, nil
		}

		result, _, _ := s.group.Do(flight, func() (any, error) {
			return refresh(s, ctx, key, flight, id, capability, apiKey, snapshots, list, fallback), nil
		})

		return result.([]T), nil
	}

	return refresh(s, ctx, key, flight, id, capability, apiKey, snapshots, list, fallback), nil
}

// refresh performs one vendor fetch. On failure it returns the newest good
// data: a still-valid cache entry, then the in-memory snapshot, then the
// static fallback. Good cache is never overwritten by a failed fetch.
func refresh[T any](
	s *Service,
	ctx context.Context,
	key, flight, id string,
	capability provider.Capability,
	apiKey string,
	snapshots map[string][]T,
	list func(context.Context, string) ([]T, error),
	fallback func() []T,
) []T {
	s.mu.Lock()
	s.inflight[flight] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, flight)
		s.mu.Unlock()
	}()

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := list(fetchCtx, apiKey)

	if err == nil && len(result) > 0 {
		s.mu.Lock()
		snapshots[key] = result
		s.mu.Unlock()

		s.writeEntry(ctx, key, result)

		return result
	}

	if err != nil {
		s.logger.Warn("catalog fetch failed, serving newest good data", "key", key, "error", err)

		s.fallbacks.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", id),
			attribute.String("capability", string(capability)),
		))
	}

	if data, ok := s.readEntry(ctx, key); ok {
		var cached []T

		if err := json.Unmarshal(data, &cached); err == nil && len(cached) > 0 {
			return cached
		}
	}

	s.mu.RLock()
	snapshot, ok := snapshots[key]
	s.mu.RUnlock()

	if ok && len(snapshot) > 0 {
		return snapshot
	}

	return fallback()
}

func modelKey(id string, capability provider.Capability) string {
	return KindModels + ":" + id + ":" + string(capability)
}

func voiceKey(id string) string {
	return KindVoices + ":" + id
}

// readEntry loads a cache entry and enforces its TTL. Expired or corrupt
// entries are removed. Store failures degrade to a miss.
func (s *Service) readEntry(ctx context.Context, key string) (json.RawMessage, bool) {
	value, ok, err := s.store.Get(ctx, key)

	if err != nil {
		s.logger.Warn("catalog cache read failed", "key", key, "error", err)

		return nil, false
	}

	if !ok {
		return nil, false
	}

	var entry Entry

	if err := json.Unmarshal([]byte(value), &entry); err != nil {
		s.logger.Warn("catalog cache entry corrupt", "key", key, "error", err)

		if err := s.store.Remove(ctx, key); err != nil {
			s.logger.Warn("catalog cache remove failed", "key", key, "error", err)
		}

		return nil, false
	}

	age := s.now().UnixMilli() - entry.FetchedAt

	if age >= entry.TTL {
		if err := s.store.Remove(ctx, key); err != nil {
			s.logger.Warn("catalog cache remove failed", "key", key, "error", err)
		}

		return nil, false
	}

	return entry.Data, true
}

func (s *Service) writeEntry(ctx context.Context, key string, data any) {
	payload, err := json.Marshal(data)

	if err != nil {
		s.logger.Warn("catalog cache encode failed", "key", key, "error", err)

		return
	}

	entry := Entry{
		Data: payload,

		FetchedAt: s.now().UnixMilli(),
		TTL:       s.ttl.Milliseconds(),
	}

	value, err := json.Marshal(entry)

	if err != nil {
		s.logger.Warn("catalog cache encode failed", "key", key, "error", err)

		return
	}

	// a write failure is a cache miss next time, nothing more
	if err := s.store.Set(ctx, key, string(value)); err != nil {
		s.logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
}

// ClearProvider removes every stored entry of one provider: the model entry
// of each capability family, plus the voice entry. Fire-and-forget: failures
// are logged, never returned.
func (s *Service) ClearProvider(ctx context.Context, id string) {
	prefix := KindModels + ":" + id + ":"

	keys, err := s.store.Keys(ctx, prefix)

	if err != nil {
		s.logger.Warn("catalog cache clear failed", "provider", id, "error", err)
	} else if err := s.store.MultiRemove(ctx, keys); err != nil {
		s.logger.Warn("catalog cache clear failed", "provider", id, "error", err)
	}

	if err := s.store.Remove(ctx, voiceKey(id)); err != nil {
		s.logger.Warn("catalog cache clear failed", "provider", id, "error", err)
	}

	s.mu.Lock()

	for key := range s.models {
		if strings.HasPrefix(key, prefix) {
			delete(s.models, key)
		}
	}

	delete(s.voices, voiceKey(id))

	s.mu.Unlock()
}

// ClearAll removes every entry under both namespaces.
func (s *Service) ClearAll(ctx context.Context) {
	for _, kind := range []string{KindModels, KindVoices} {
		keys, err := s.store.Keys(ctx, kind+":")

		if err != nil {
			s.logger.Warn("catalog cache clear failed", "error", err)

			continue
		}

		if err := s.store.MultiRemove(ctx, keys); err != nil {
			s.logger.Warn("catalog cache clear failed", "error", err)
		}
	}

	s.mu.Lock()
	s.models = make(map[string][]provider.Model)
	s.voices = make(map[string][]provider.Voice)
	s.mu.Unlock()
}

// ModelsTimestamp reports when a provider's model catalog was last fetched,
// for "last updated" display. It reads the raw entry: an expired entry still
// reports its fetch time, display never deletes. Missing or corrupt entries
// report false.
func (s *Service) ModelsTimestamp(ctx context.Context, id string, capability provider.Capability) (time.Time, bool) {
	return s.timestamp(ctx, modelKey(id, capability))
}

// VoicesTimestamp is the voice counterpart of ModelsTimestamp.
func (s *Service) VoicesTimestamp(ctx context.Context, id string) (time.Time, bool) {
	return s.timestamp(ctx, voiceKey(id))
}

func (s *Service) timestamp(ctx context.Context, key string) (time.Time, bool) {
	value, ok, err := s.store.Get(ctx, key)

	if err != nil || !ok {
		return time.Time{}, false
	}

	var entry Entry

	if err := json.Unmarshal([]byte(value), &entry); err != nil {
		return time.Time{}, false
	}

	return time.UnixMilli(entry.FetchedAt), true
}
