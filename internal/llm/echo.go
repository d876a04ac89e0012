package llm

import (
	"context"
	"strings"
)

// EchoClient stands in for a model during local development. It returns the
// unframed sentence Count times, and its output skips result filtering.
type EchoClient struct {
	prefix string
	suffix string
}

var _ Sampler = (*EchoClient)(nil)

func NewEchoClient(prefix, suffix string) *EchoClient {
	return &EchoClient{prefix: prefix, suffix: suffix}
}

func (c *EchoClient) Name() string {
	return "echo"
}

func (c *EchoClient) Passthrough() bool {
	return true
}

func (c *EchoClient) Sample(ctx context.Context, prompt string, opts SampleOptions) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sentence := strings.TrimSuffix(strings.TrimPrefix(prompt, c.prefix), c.suffix)
	out := make([]string, opts.Count)
	for i := range out {
		out[i] = sentence
	}
	return out, nil
}
