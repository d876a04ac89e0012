package llm

import (
	"context"
	"sync"
	"time"
)

// MockSampler is a scripted Sampler for tests. Each call pops the next entry
// of Responses; once exhausted it returns Response. PerCall caps how many
// sequences a single call yields.
type MockSampler struct {
	Responses [][]string
	Response  []string
	PerCall   int
	Err       error
	Delay     time.Duration

	mu          sync.Mutex
	calls       []SampleOptions
	prompts     []string
	inFlight    int
	maxInFlight int
}

var _ Sampler = (*MockSampler)(nil)

func (m *MockSampler) Name() string {
	return "mock"
}

func (m *MockSampler) Sample(ctx context.Context, prompt string, opts SampleOptions) ([]string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, opts)
	m.prompts = append(m.prompts, prompt)
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	resp := m.Response
	if len(m.Responses) > 0 {
		resp = m.Responses[0]
		m.Responses = m.Responses[1:]
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.PerCall > 0 && len(resp) > m.PerCall {
		resp = resp[:m.PerCall]
	}
	out := make([]string, len(resp))
	copy(out, resp)
	return out, nil
}

// Calls returns the options of every Sample call so far.
func (m *MockSampler) Calls() []SampleOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SampleOptions(nil), m.calls...)
}

// Prompts returns the prompt of every Sample call so far.
func (m *MockSampler) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// MaxInFlight reports the highest number of concurrent Sample calls observed.
func (m *MockSampler) MaxInFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxInFlight
}
