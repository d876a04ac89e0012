package generation

import (
	"regexp"
	"strings"
)

var specialTokens = regexp.MustCompile(`</?s>|<pad>|<unk>|<extra_id_\d+>`)

// Spacing artifacts left by detokenization, in the order they are undone.
var tokenizationSpaces = strings.NewReplacer(
	" .", ".",
	" ?", "?",
	" !", "!",
	" ,", ",",
	" ' ", "'",
	" n't", "n't",
	" 'm", "'m",
	" 's", "'s",
	" 've", "'ve",
	" 're", "'re",
)

// CleanDecoded strips special tokens from a decoded sequence, collapses
// whitespace and removes the spaces a tokenizer leaves before punctuation
// and contractions.
func CleanDecoded(s string) string {
	s = specialTokens.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(tokenizationSpaces.Replace(s))
}
