package token

import (
	"regexp"
	"strings"
)

// fragment matches either a maximal run of word characters or a maximal run
// of everything else. RE2's \w is the ASCII class [0-9A-Za-z_], which keeps
// the tokenizer locale independent.
var fragment = regexp.MustCompile(`\w+|\W+`)

// Tokenize splits a line into word and punctuation tokens. Runs of non-word
// characters are kept as their own token with surrounding whitespace
// stripped; whitespace-only fragments are discarded.
//
//	Tokenize("Bob dropped the apple. Where is the apple?")
//	// ["Bob", "dropped", "the", "apple", ".", "Where", "is", "the", "apple", "?"]
func Tokenize(line string) []string {
	var tokens []string
	for _, frag := range fragment.FindAllString(line, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		tokens = append(tokens, frag)
	}
	return tokens
}
