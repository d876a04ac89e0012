// Package generation drives a model provider to produce raw paraphrase
// candidates for a validated request.
package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenthands/paraphrase/internal/config"
	"github.com/agenthands/paraphrase/internal/core/model"
	apperrors "github.com/agenthands/paraphrase/internal/errors"
	"github.com/agenthands/paraphrase/internal/llm"
)

type Adapter struct {
	Sampler llm.Sampler
	cfg     config.GenerationConfig
}

func NewAdapter(sampler llm.Sampler, cfg config.GenerationConfig) *Adapter {
	return &Adapter{
		Sampler: sampler,
		cfg:     cfg,
	}
}

// Frame wraps the sentence in the instruction prefix and end marker the
// model was trained on.
func (a *Adapter) Frame(sentence string) string {
	return a.cfg.Prefix + sentence + a.cfg.Suffix
}

// Options returns the sampling options for req.
func (a *Adapter) Options(req model.ParaphraseRequest) llm.SampleOptions {
	return llm.SampleOptions{
		Count:       req.NOutput,
		MaxTokens:   req.MaxLen,
		TopK:        a.cfg.TopK,
		TopP:        a.cfg.TopP,
		Temperature: a.cfg.Temperature,
		StopEarly:   true,
	}
}

// Candidates samples until exactly req.NOutput cleaned candidates are
// collected. Any provider failure is a server error.
func (a *Adapter) Candidates(ctx context.Context, req model.ParaphraseRequest) (model.CandidateBatch, error) {
	if a.Sampler == nil {
		return nil, apperrors.New(apperrors.ErrCodeUnavailable, "no model provider configured")
	}

	prompt := a.Frame(req.Sentence)
	opts := a.Options(req)
	batch := make(model.CandidateBatch, 0, req.NOutput)

	for len(batch) < req.NOutput {
		opts.Count = req.NOutput - len(batch)

		out, err := a.Sampler.Sample(ctx, prompt, opts)
		if err != nil {
			return nil, classify(a.Sampler.Name(), err)
		}
		if len(out) == 0 {
			return nil, apperrors.New(apperrors.ErrCodeInternal,
				fmt.Sprintf("%s returned no candidates", a.Sampler.Name()))
		}
		for _, s := range out {
			batch = append(batch, CleanDecoded(s))
		}
	}

	return batch[:req.NOutput], nil
}

func classify(provider string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, provider+" did not finish generation", err)
	}
	return apperrors.Wrap(apperrors.ErrCodeInternal, provider+" generation failed", err)
}
