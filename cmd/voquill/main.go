package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/voquill/voquill/config"
	"github.com/voquill/voquill/pkg/otel"
	"github.com/voquill/voquill/pkg/provider"

	_ "github.com/joho/godotenv/autoload"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "config file")

	providerFlag := flag.String("provider", "openai", "provider id")
	keyFlag := flag.String("key", "", "provider api key")
	modelFlag := flag.String("model", "", "model id")

	voiceFlag := flag.String("voice", "", "voice id")
	languageFlag := flag.String("language", "", "language hint")
	capabilityFlag := flag.String("capability", "", "stt, tts or llm (models: default lists every family)")

	forceFlag := flag.Bool("force", false, "bypass the discovery cache")

	flag.Parse()

	cfg, err := parseConfig(*configFlag)

	if err != nil {
		fail(err)
	}

	ctx := context.Background()

	if err := otel.Setup(ctx, "voquill", version); err != nil {
		fail(err)
	}

	id := *providerFlag
	key := resolveKey(id, *keyFlag)

	switch flag.Arg(0) {
	case "providers":
		listProviders(cfg)

	case "models":
		listModels(ctx, cfg, id, key, provider.Capability(*capabilityFlag), *forceFlag)

	case "voices":
		voices, err := cfg.Speech.Voices(ctx, id, key, *forceFlag)

		if err != nil {
			fail(err)
		}

		for _, v := range voices {
			fmt.Printf("%-30s %-20s %s\n", v.ID, v.Name, v.Gender)
		}

	case "transcribe":
		if flag.Arg(1) == "" {
			fail(fmt.Errorf("usage: voquill transcribe <audio file>"))
		}

		text, err := cfg.Speech.Transcribe(ctx, id, flag.Arg(1), &provider.TranscribeOptions{
			APIKey: key,

			Model:    *modelFlag,
			Language: *languageFlag,
		})

		if err != nil {
			fail(err)
		}

		fmt.Println(text)

	case "synthesize":
		if flag.Arg(1) == "" {
			fail(fmt.Errorf("usage: voquill synthesize <text>"))
		}

		path, err := cfg.Speech.Synthesize(ctx, id, flag.Arg(1), &provider.SynthesizeOptions{
			APIKey: key,

			Model: *modelFlag,
			Voice: *voiceFlag,
		})

		if err != nil {
			fail(err)
		}

		fmt.Println(path)

	case "complete":
		if flag.Arg(1) == "" {
			fail(fmt.Errorf("usage: voquill complete <prompt>"))
		}

		text, err := cfg.Speech.Complete(ctx, id, []provider.Message{
			provider.UserMessage(flag.Arg(1)),
		}, &provider.CompleteOptions{
			APIKey: key,

			Model: *modelFlag,
		})

		if err != nil {
			fail(err)
		}

		fmt.Println(text)

	case "validate":
		ok := cfg.Speech.ValidateConfig(ctx, id, provider.Config{
			APIKey: key,
		})

		fmt.Println(ok)

		if !ok {
			os.Exit(1)
		}

	case "clear-cache":
		if flag.NArg() > 1 {
			cfg.Catalog.ClearProvider(ctx, flag.Arg(1))
		} else {
			cfg.Catalog.ClearAll(ctx)
		}

	default:
		fail(fmt.Errorf("usage: voquill [flags] providers|models|voices|transcribe|synthesize|complete|validate|clear-cache"))
	}
}

func parseConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Parse(path)
}

func listModels(ctx context.Context, cfg *config.Config, id, key string, capability provider.Capability, force bool) {
	if capability != "" {
		models, err := cfg.Speech.Models(ctx, id, capability, key, force)

		if err != nil {
			fail(err)
		}

		for _, m := range models {
			fmt.Printf("%-30s %s\n", m.ID, m.Name)
		}

		return
	}

	listed := false

	for _, capability := range []provider.Capability{provider.CapabilitySTT, provider.CapabilityTTS, provider.CapabilityLLM} {
		models, err := cfg.Speech.Models(ctx, id, capability, key, force)

		if err != nil {
			continue
		}

		listed = true

		for _, m := range models {
			fmt.Printf("%-5s %-30s %s\n", capability, m.ID, m.Name)
		}
	}

	if !listed {
		fail(fmt.Errorf("no model catalog for provider %q", id))
	}
}

func listProviders(cfg *config.Config) {
	for _, d := range cfg.STT.Descriptors() {
		fmt.Printf("%-15s %-5s %s\n", d.ID, d.Capability, d.Name)
	}

	for _, d := range cfg.TTS.Descriptors() {
		fmt.Printf("%-15s %-5s %s\n", d.ID, d.Capability, d.Name)
	}

	for _, d := range cfg.LLM.Descriptors() {
		fmt.Printf("%-15s %-5s %s\n", d.ID, d.Capability, d.Name)
	}
}

func resolveKey(id, key string) string {
	if key != "" {
		return key
	}

	switch id {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")

	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")

	case "google":
		return os.Getenv("GOOGLE_API_KEY")

	case "mistral":
		return os.Getenv("MISTRAL_API_KEY")

	case "elevenlabs":
		return os.Getenv("ELEVENLABS_API_KEY")
	}

	return ""
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
