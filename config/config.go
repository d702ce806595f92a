package config

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/voquill/voquill/pkg/catalog"
	"github.com/voquill/voquill/pkg/kvstore"
	"github.com/voquill/voquill/pkg/registry"
	"github.com/voquill/voquill/pkg/speech"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	STT *registry.STT
	TTS *registry.TTS
	LLM *registry.LLM

	Store   kvstore.Store
	Catalog *catalog.Service

	Speech *speech.Service
}

// Default builds a configuration with the built-in providers, an in-memory
// cache and the default output directory.
func Default() *Config {
	c, _ := assemble(&configFile{})
	return c
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	return assemble(file)
}

func assemble(file *configFile) (*Config, error) {
	c := &Config{}

	store, err := createStore(file.Cache)

	if err != nil {
		return nil, err
	}

	c.Store = store

	var catalogOptions []catalog.Option

	if file.Cache.TTL != "" {
		ttl, err := time.ParseDuration(file.Cache.TTL)

		if err != nil {
			return nil, errors.New("invalid cache ttl: " + file.Cache.TTL)
		}

		catalogOptions = append(catalogOptions, catalog.WithTTL(ttl))
	}

	c.Catalog = catalog.New(c.Store, catalogOptions...)

	if err := c.registerProviders(file); err != nil {
		return nil, err
	}

	var speechOptions []speech.Option

	if file.Output.Dir != "" {
		speechOptions = append(speechOptions, speech.WithOutputDir(file.Output.Dir))
	}

	c.Speech = speech.New(c.STT, c.TTS, c.LLM, c.Catalog, speechOptions...)

	return c, nil
}

type configFile struct {
	Providers []providerConfig `yaml:"providers"`

	Cache  cacheConfig  `yaml:"cache"`
	Output outputConfig `yaml:"output"`
}

type cacheConfig struct {
	Backend string `yaml:"backend"`

	Path    string `yaml:"path"`
	Address string `yaml:"address"`

	TTL string `yaml:"ttl"`
}

type outputConfig struct {
	Dir string `yaml:"dir"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createStore(cfg cacheConfig) (kvstore.Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "memory":
		return kvstore.NewMemory(), nil

	case "file":
		if cfg.Path == "" {
			return nil, errors.New("file cache requires a path")
		}

		return kvstore.NewFile(cfg.Path), nil

	case "redis":
		if cfg.Address == "" {
			return nil, errors.New("redis cache requires an address")
		}

		return kvstore.NewRedis(cfg.Address, "voquill:"), nil

	default:
		return nil, errors.New("invalid cache backend: " + cfg.Backend)
	}
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
