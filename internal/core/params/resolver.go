// Package params turns loosely typed request parameters into a validated
// paraphrase request.
package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agenthands/paraphrase/internal/core/model"
	apperrors "github.com/agenthands/paraphrase/internal/errors"
)

const DefaultMaxLen = 256

const (
	MsgNoSentence       = "No sentence provided! ?sentence="
	MsgNoOutputCount    = "No number of output sentences provided! ?n_output="
	MsgOutputCountNaN   = "n_output has to be an integer"
	MsgOutputCountRange = "n_output has to be a positive integer"
	MsgMaxLenNaN        = "max_len was provided and has to be an integer"
	MsgMaxLenRange      = "max_len has to be a positive integer"
)

// Raw holds the textual parameters exactly as received. An empty string is
// treated the same as a missing parameter.
type Raw struct {
	Sentence string
	NOutput  string
	MaxLen   string
}

// Limits bounds what a caller may ask for.
type Limits struct {
	// DefaultMaxLen is used when max_len is absent. Zero means DefaultMaxLen.
	DefaultMaxLen int
	// MaxOutputs caps n_output. Zero disables the cap.
	MaxOutputs int
}

// Resolve validates raw in a fixed order: sentence, n_output presence,
// n_output type and range, then max_len. The first violated rule is returned
// as a client-input error.
func Resolve(raw Raw, limits Limits) (model.ParaphraseRequest, error) {
	if raw.Sentence == "" {
		return model.ParaphraseRequest{}, apperrors.InvalidUsage(MsgNoSentence)
	}

	nOutput, err := resolveOutputCount(raw.NOutput, limits.MaxOutputs)
	if err != nil {
		return model.ParaphraseRequest{}, err
	}

	maxLen, err := resolveMaxLen(raw.MaxLen, limits.DefaultMaxLen)
	if err != nil {
		return model.ParaphraseRequest{}, err
	}

	return model.ParaphraseRequest{
		Sentence: raw.Sentence,
		NOutput:  nOutput,
		MaxLen:   maxLen,
	}, nil
}

func resolveOutputCount(s string, maxOutputs int) (int, error) {
	if s == "" {
		return 0, apperrors.InvalidUsage(MsgNoOutputCount)
	}
	n, ok := parseInt(s)
	if !ok {
		return 0, apperrors.InvalidUsage(MsgOutputCountNaN)
	}
	if n <= 0 {
		return 0, apperrors.InvalidUsage(MsgOutputCountRange)
	}
	if maxOutputs > 0 && n > maxOutputs {
		return 0, apperrors.InvalidUsage(fmt.Sprintf("n_output has to be at most %d", maxOutputs))
	}
	return n, nil
}

func resolveMaxLen(s string, def int) (int, error) {
	if s == "" {
		if def <= 0 {
			def = DefaultMaxLen
		}
		return def, nil
	}
	n, ok := parseInt(s)
	if !ok {
		return 0, apperrors.InvalidUsage(MsgMaxLenNaN)
	}
	if n <= 0 {
		return 0, apperrors.InvalidUsage(MsgMaxLenRange)
	}
	return n, nil
}

// parseInt accepts surrounding whitespace, an optional sign and single
// underscores between digits ("1_000").
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	sign, digits := "", s
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, digits = s[:1], s[1:]
	}
	if strings.HasPrefix(digits, "_") || strings.HasSuffix(digits, "_") || strings.Contains(digits, "__") {
		return 0, false
	}
	n, err := strconv.Atoi(sign + strings.ReplaceAll(digits, "_", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}
