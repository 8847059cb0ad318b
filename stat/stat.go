package stat

import (
	"babiprep/story"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumExamples int
	NumTokens   int
	StoryMaxLen int
	QueryMaxLen int

	// Distribution of flattened story lengths.
	StoryLenDis map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{StoryLenDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate folds one split into the running statistics. Each example
// contributes its story and question tokens plus the single answer token.
func (h *Handler) Aggregate(split []story.FlatExample) {
	for _, ex := range split {
		h.stats.NumExamples++
		h.stats.NumTokens += len(ex.Story) + len(ex.Question) + 1
		h.stats.StoryLenDis[len(ex.Story)]++

		if len(ex.Story) > h.stats.StoryMaxLen {
			h.stats.StoryMaxLen = len(ex.Story)
		}
		if len(ex.Question) > h.stats.QueryMaxLen {
			h.stats.QueryMaxLen = len(ex.Question)
		}
	}
}
