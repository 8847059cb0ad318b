package stat

import (
	"testing"

	"babiprep/story"
)

func TestAggregate(t *testing.T) {
	train := []story.FlatExample{
		{
			Story: []string{
				"Mary", "moved", "to", "the", "bathroom", ".",
				"John", "went", "to", "the", "hallway", ".",
			},
			Question: []string{"Where", "is", "Mary", "?"},
			Answer:   "bathroom",
		},
	}
	test := []story.FlatExample{
		{
			Story:    []string{"Sandra", "journeyed", "to", "the", "kitchen", "."},
			Question: []string{"Where", "is", "Sandra", "?"},
			Answer:   "kitchen",
		},
	}

	hdl := NewHandler()
	hdl.Aggregate(train)
	hdl.Aggregate(test)

	stats := hdl.Get()
	if stats.NumExamples != 2 {
		t.Errorf("NumExamples = %d, want 2", stats.NumExamples)
	}
	if stats.NumTokens != 12+4+1+6+4+1 {
		t.Errorf("NumTokens = %d, want %d", stats.NumTokens, 12+4+1+6+4+1)
	}
	if stats.StoryMaxLen != 12 {
		t.Errorf("StoryMaxLen = %d, want 12", stats.StoryMaxLen)
	}
	if stats.QueryMaxLen != 4 {
		t.Errorf("QueryMaxLen = %d, want 4", stats.QueryMaxLen)
	}
	if stats.StoryLenDis[12] != 1 || stats.StoryLenDis[6] != 1 {
		t.Errorf("StoryLenDis = %v, want one story of 12 and one of 6", stats.StoryLenDis)
	}
}
