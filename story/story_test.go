package story

import (
	"reflect"
	"strings"
	"testing"
)

const sample = `1 Mary moved to the bathroom.
2 John went to the hallway.
3 Where is Mary?	bathroom	1
4 Daniel went back to the hallway.
5 Where is Daniel?	hallway	4
1 Sandra journeyed to the kitchen.
2 Where is Sandra?	kitchen	1
`

func TestParseFullContext(t *testing.T) {
	examples, err := Parse(strings.NewReader(sample), false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(examples) != 3 {
		t.Fatalf("expected 3 examples, got %d", len(examples))
	}

	first := examples[0]
	wantContext := []Sentence{
		{"Mary", "moved", "to", "the", "bathroom", "."},
		{"John", "went", "to", "the", "hallway", "."},
	}
	if !reflect.DeepEqual(first.Context, wantContext) {
		t.Errorf("context = %v, want %v", first.Context, wantContext)
	}

	wantQuestion := []string{"Where", "is", "Mary", "?"}
	if !reflect.DeepEqual(first.Question, wantQuestion) {
		t.Errorf("question = %v, want %v", first.Question, wantQuestion)
	}

	if first.Answer != "bathroom" {
		t.Errorf("answer = %q, want %q", first.Answer, "bathroom")
	}

	// The second question of the first story sees the earlier sentences
	// but not the placeholder left by the first question.
	second := examples[1]
	if len(second.Context) != 3 {
		t.Fatalf("expected 3 context sentences, got %d", len(second.Context))
	}
	wantLast := Sentence{"Daniel", "went", "back", "to", "the", "hallway", "."}
	if !reflect.DeepEqual(second.Context[2], wantLast) {
		t.Errorf("last context sentence = %v, want %v", second.Context[2], wantLast)
	}
}

func TestParseResetsStoryOnIDOne(t *testing.T) {
	examples, err := Parse(strings.NewReader(sample), false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	third := examples[2]
	wantContext := []Sentence{
		{"Sandra", "journeyed", "to", "the", "kitchen", "."},
	}
	if !reflect.DeepEqual(third.Context, wantContext) {
		t.Errorf("context after reset = %v, want %v (no leakage from previous story)", third.Context, wantContext)
	}
}

func TestParseOnlySupporting(t *testing.T) {
	input := `1 Mary moved to the bathroom.
2 John went to the hallway.
3 Daniel went back to the garden.
4 Where is Daniel?	garden	3 1
`
	examples, err := Parse(strings.NewReader(input), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}

	// Supporting sentences must appear exactly in the listed order.
	wantContext := []Sentence{
		{"Daniel", "went", "back", "to", "the", "garden", "."},
		{"Mary", "moved", "to", "the", "bathroom", "."},
	}
	if !reflect.DeepEqual(examples[0].Context, wantContext) {
		t.Errorf("supporting context = %v, want %v", examples[0].Context, wantContext)
	}
}

func TestParseSupportingIndexAfterQuestion(t *testing.T) {
	// The placeholder appended after a question keeps later supporting
	// indices aligned: sentence 4 is the line after the first question.
	input := `1 Mary moved to the bathroom.
2 John went to the hallway.
3 Where is Mary?	bathroom	1
4 Daniel went back to the hallway.
5 Where is Daniel?	hallway	4
`
	examples, err := Parse(strings.NewReader(input), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Sentence{{"Daniel", "went", "back", "to", "the", "hallway", "."}}
	if !reflect.DeepEqual(examples[1].Context, want) {
		t.Errorf("context = %v, want %v", examples[1].Context, want)
	}
}

func TestParseMalformedLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric id", "one Mary moved to the bathroom.\n"},
		{"missing id separator", "1\n"},
		{"wrong tab arity", "1 Where is Mary?\tbathroom\n"},
		{"supporting id out of range", "1 Mary moved.\n2 Where is Mary?\tbathroom\t7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onlySupporting := strings.Contains(tt.name, "supporting")
			if _, err := Parse(strings.NewReader(tt.input), onlySupporting); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	examples, err := Parse(strings.NewReader(sample), false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	flat := Flatten(examples, 0)
	if len(flat) != 3 {
		t.Fatalf("expected 3 flat examples, got %d", len(flat))
	}

	want := []string{
		"Mary", "moved", "to", "the", "bathroom", ".",
		"John", "went", "to", "the", "hallway", ".",
	}
	if !reflect.DeepEqual(flat[0].Story, want) {
		t.Errorf("flattened story = %v, want %v", flat[0].Story, want)
	}
}

func TestFlattenMaxLength(t *testing.T) {
	examples, err := Parse(strings.NewReader(sample), false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// The first story's second question has 19 context tokens; a limit of
	// 13 keeps only the shorter stories.
	flat := Flatten(examples, 13)
	if len(flat) != 2 {
		t.Fatalf("expected 2 flat examples, got %d", len(flat))
	}
	for _, ex := range flat {
		if len(ex.Story) >= 13 {
			t.Errorf("story of length %d should have been discarded", len(ex.Story))
		}
	}
}
