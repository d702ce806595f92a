package otel

import (
	"context"

	"github.com/voquill/voquill/pkg/provider"

	"go.opentelemetry.io/otel"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	model    string
	provider string

	completer provider.Completer
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	return &observableCompleter{
		completer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "complete "+p.provider)
	defer span.End()

	span.SetAttributes(String("provider", p.provider), String("model", p.model))

	result, err := p.completer.Complete(ctx, messages, options)

	if err != nil {
		span.RecordError(err)
	}

	return result, err
}
