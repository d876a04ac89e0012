package core

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/agenthands/paraphrase/internal/config"
	"github.com/agenthands/paraphrase/internal/core/dedupe"
	"github.com/agenthands/paraphrase/internal/core/generation"
	"github.com/agenthands/paraphrase/internal/core/model"
	"github.com/agenthands/paraphrase/internal/core/params"
	apperrors "github.com/agenthands/paraphrase/internal/errors"
	"github.com/agenthands/paraphrase/internal/llm"
)

// Paraphraser runs the request pipeline: resolve parameters, sample
// candidates from the shared model, filter them. It is safe for concurrent
// use; at most maxConcurrency inferences reach the model at once and the
// rest queue.
type Paraphraser struct {
	Generator *generation.Adapter
	limits    params.Limits
	sem       *semaphore.Weighted
}

func NewParaphraser(sampler llm.Sampler, cfg *config.Config) *Paraphraser {
	slots := int64(cfg.LLM.MaxConcurrency)
	if slots <= 0 {
		slots = 1
	}
	return &Paraphraser{
		Generator: generation.NewAdapter(sampler, cfg.Generation),
		limits: params.Limits{
			DefaultMaxLen: cfg.Generation.DefaultMaxLen,
			MaxOutputs:    cfg.Generation.MaxOutputs,
		},
		sem: semaphore.NewWeighted(slots),
	}
}

// Paraphrase validates raw and returns the filtered paraphrases. Client
// input problems come back as INVALID_REQUEST structured errors.
func (p *Paraphraser) Paraphrase(ctx context.Context, raw params.Raw) ([]string, error) {
	req, err := params.Resolve(raw, p.limits)
	if err != nil {
		return nil, err
	}
	return p.ParaphraseRequest(ctx, req)
}

// ParaphraseRequest runs generation and filtering for an already validated
// request. A caller whose context ends while queued is released; once
// generation has started it runs to completion.
func (p *Paraphraser) ParaphraseRequest(ctx context.Context, req model.ParaphraseRequest) ([]string, error) {
	inferenceWaiting.Inc()
	err := p.sem.Acquire(ctx, 1)
	inferenceWaiting.Dec()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "request abandoned while waiting for the model", err)
	}

	provider := "none"
	if p.Generator.Sampler != nil {
		provider = p.Generator.Sampler.Name()
	}

	start := time.Now()
	batch, err := p.generate(context.WithoutCancel(ctx), req)
	inferenceDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	if err != nil {
		inferenceFailures.WithLabelValues(provider).Inc()
		return nil, err
	}

	out := []string(batch)
	if !llm.IsPassthrough(p.Generator.Sampler) {
		out = dedupe.Filter(req.Sentence, batch)
	}

	candidatesGenerated.Add(float64(len(batch)))
	candidatesDropped.Add(float64(len(batch) - len(out)))

	slog.Debug("paraphrase generated",
		"provider", provider,
		"requested", req.NOutput,
		"maxLen", req.MaxLen,
		"returned", len(out),
		"duration", time.Since(start).String(),
	)

	return out, nil
}

// generate holds a model slot for the duration of one Candidates call.
func (p *Paraphraser) generate(ctx context.Context, req model.ParaphraseRequest) (model.CandidateBatch, error) {
	defer p.sem.Release(1)
	inferenceInFlight.Inc()
	defer inferenceInFlight.Dec()

	return p.Generator.Candidates(ctx, req)
}
