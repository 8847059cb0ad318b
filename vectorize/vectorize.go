// Package vectorize converts parsed examples into fixed-width integer
// tensors suitable as model input.
package vectorize

import (
	"fmt"

	"gorgonia.org/tensor"

	"babiprep/story"
	"babiprep/vocab"
)

// Config carries the vocabulary and the fixed sequence widths. It is built
// once from the full train+test corpus and never updated afterwards.
type Config struct {
	Vocab       *vocab.Vocab
	StoryMaxLen int
	QueryMaxLen int
}

// NewConfig computes the maximum story and question lengths over all given
// splits.
func NewConfig(v *vocab.Vocab, splits ...[]story.FlatExample) Config {
	c := Config{Vocab: v}
	for _, split := range splits {
		for _, ex := range split {
			if len(ex.Story) > c.StoryMaxLen {
				c.StoryMaxLen = len(ex.Story)
			}
			if len(ex.Question) > c.QueryMaxLen {
				c.QueryMaxLen = len(ex.Question)
			}
		}
	}
	return c
}

// Set holds the vectorized tensors of one split.
type Set struct {
	Stories   *tensor.Dense // (n, StoryMaxLen) int
	Questions *tensor.Dense // (n, QueryMaxLen) int
	Answers   *tensor.Dense // (n,) int
}

// Vectorize maps every token of the split to its vocabulary id. Stories and
// questions are left-padded with the padding sentinel up to their fixed
// width; sequences longer than the width are left-truncated (the trailing
// tokens are kept, consistent with the padding side). cb, if not nil, is
// called after each example with the number done and the total.
func (c Config) Vectorize(split []story.FlatExample, cb func(done, total int)) (*Set, error) {
	n := len(split)
	stories := make([]int, n*c.StoryMaxLen)
	questions := make([]int, n*c.QueryMaxLen)
	answers := make([]int, n)

	for i, ex := range split {
		if err := c.sequence(ex.Story, stories[i*c.StoryMaxLen:(i+1)*c.StoryMaxLen]); err != nil {
			return nil, fmt.Errorf("example %d story: %w", i, err)
		}
		if err := c.sequence(ex.Question, questions[i*c.QueryMaxLen:(i+1)*c.QueryMaxLen]); err != nil {
			return nil, fmt.Errorf("example %d question: %w", i, err)
		}

		id, ok := c.Vocab.ID(ex.Answer)
		if !ok {
			return nil, fmt.Errorf("example %d answer: token %q not in vocabulary", i, ex.Answer)
		}
		answers[i] = id

		if cb != nil {
			cb(i+1, n)
		}
	}

	return &Set{
		Stories:   tensor.New(tensor.WithShape(n, c.StoryMaxLen), tensor.WithBacking(stories)),
		Questions: tensor.New(tensor.WithShape(n, c.QueryMaxLen), tensor.WithBacking(questions)),
		Answers:   tensor.New(tensor.WithShape(n), tensor.WithBacking(answers)),
	}, nil
}

// sequence fills dst with the ids of tokens, left-padded with vocab.PadID.
func (c Config) sequence(tokens []string, dst []int) error {
	if len(tokens) > len(dst) {
		tokens = tokens[len(tokens)-len(dst):]
	}

	pad := len(dst) - len(tokens)
	for i := 0; i < pad; i++ {
		dst[i] = vocab.PadID
	}

	for i, t := range tokens {
		id, ok := c.Vocab.ID(t)
		if !ok {
			return fmt.Errorf("token %q not in vocabulary", t)
		}
		dst[pad+i] = id
	}

	return nil
}
