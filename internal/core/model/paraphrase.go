package model

// ParaphraseRequest is a validated paraphrase call. It is created per request
// and never modified afterwards.
type ParaphraseRequest struct {
	Sentence string
	NOutput  int
	MaxLen   int
}

// CandidateBatch holds the raw decoded model outputs, in generation order.
type CandidateBatch []string

// ParaphraseResult is the filtered response payload.
type ParaphraseResult struct {
	Output []string `json:"output"`
}
