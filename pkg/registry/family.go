package registry

import (
	"github.com/voquill/voquill/pkg/provider"
)

// One registry per capability family.
type (
	STT = Registry[provider.Transcriber]
	TTS = Registry[provider.Synthesizer]
	LLM = Registry[provider.Completer]
)

func NewSTT(init func(*STT)) *STT {
	return New(init)
}

func NewTTS(init func(*TTS)) *TTS {
	return New(init)
}

func NewLLM(init func(*LLM)) *LLM {
	return New(init)
}
