// Package vocab holds the bidirectional token/id mapping shared by all
// splits of a dataset.
package vocab

import (
	"fmt"
	"sort"

	"babiprep/story"
)

// PadID is the padding sentinel. It never maps to a real token.
const PadID = 0

// Vocab is an immutable bidirectional token/id mapping. Ids are assigned
// 1..Len() in sorted token order; 0 is reserved for padding.
type Vocab struct {
	ids    map[string]int
	tokens []string // tokens[i] has id i+1
}

// Build collects the union of story, question and answer tokens over all
// given splits and assigns ids deterministically in sorted order.
func Build(splits ...[]story.FlatExample) *Vocab {
	set := make(map[string]struct{})
	for _, split := range splits {
		for _, ex := range split {
			for _, t := range ex.Story {
				set[t] = struct{}{}
			}
			for _, t := range ex.Question {
				set[t] = struct{}{}
			}
			set[ex.Answer] = struct{}{}
		}
	}

	tokens := make([]string, 0, len(set))
	for t := range set {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)

	return fromSorted(tokens)
}

// FromMapping reconstructs a Vocab from a persisted token-to-id mapping.
// The ids must form a bijection onto 1..len(m).
func FromMapping(m map[string]int) (*Vocab, error) {
	tokens := make([]string, len(m))
	for t, id := range m {
		if id < 1 || id > len(m) {
			return nil, fmt.Errorf("token %q has id %d, want 1..%d", t, id, len(m))
		}
		if tokens[id-1] != "" {
			return nil, fmt.Errorf("id %d assigned to both %q and %q", id, tokens[id-1], t)
		}
		tokens[id-1] = t
	}

	return fromSorted(tokens), nil
}

func fromSorted(tokens []string) *Vocab {
	ids := make(map[string]int, len(tokens))
	for i, t := range tokens {
		ids[t] = i + 1
	}
	return &Vocab{ids: ids, tokens: tokens}
}

// ID returns the id of the token and whether it is known.
func (v *Vocab) ID(token string) (int, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Token returns the token for the id and whether the id maps to a real
// token. PadID never does.
func (v *Vocab) Token(id int) (string, bool) {
	if id < 1 || id > len(v.tokens) {
		return "", false
	}
	return v.tokens[id-1], true
}

// Len is the number of real tokens.
func (v *Vocab) Len() int { return len(v.tokens) }

// Size is the number of ids including the padding sentinel.
func (v *Vocab) Size() int { return len(v.tokens) + 1 }

// Tokens returns the tokens in id order (sorted).
func (v *Vocab) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// Mapping returns a copy of the token-to-id mapping for persistence.
func (v *Vocab) Mapping() map[string]int {
	out := make(map[string]int, len(v.ids))
	for t, id := range v.ids {
		out[t] = id
	}
	return out
}
