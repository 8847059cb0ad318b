// Package render writes dataset reports to an output stream.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"babiprep/stat"
	"babiprep/story"
	"babiprep/vectorize"
)

var (
	Yellow = "\033[0;33m"
	Teal   = "\033[1;36m"
	Off    = "\033[0m"
)

type Renderer struct {
	Out io.Writer

	HasColor bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{Out: w, HasColor: true}
}

// Summary prints the dataset header: vocabulary size, the fixed sequence
// widths and the split sizes.
func (r *Renderer) Summary(challenge string, vocabSize int, cfg vectorize.Config, numTrain, numTest int) {
	r.rule()
	fmt.Fprintf(r.Out, "Challenge: %s\n", r.color(Teal, challenge))
	fmt.Fprintf(r.Out, "Vocab size: %d unique words\n", vocabSize)
	fmt.Fprintf(r.Out, "Story max length: %d words\n", cfg.StoryMaxLen)
	fmt.Fprintf(r.Out, "Query max length: %d words\n", cfg.QueryMaxLen)
	fmt.Fprintf(r.Out, "Number of training stories: %d\n", numTrain)
	fmt.Fprintf(r.Out, "Number of test stories: %d\n", numTest)
	r.rule()
}

// Example prints one (story, question, answer) triple.
func (r *Renderer) Example(ex story.FlatExample) {
	fmt.Fprintf(r.Out, "📖 %s\n", strings.Join(ex.Story, " "))
	fmt.Fprintf(r.Out, "❓ %s\n", strings.Join(ex.Question, " "))
	fmt.Fprintf(r.Out, "✍  %s\n", r.color(Yellow, ex.Answer))
}

// Shapes prints the tensor shapes of a vectorized split.
func (r *Renderer) Shapes(split string, set *vectorize.Set) {
	fmt.Fprintf(r.Out, "%s stories: %v\n", split, set.Stories.Shape())
	fmt.Fprintf(r.Out, "%s questions: %v\n", split, set.Questions.Shape())
	fmt.Fprintf(r.Out, "%s answers: %v\n", split, set.Answers.Shape())
}

// Stats prints aggregated dataset statistics including the story length
// distribution in ascending length order.
func (r *Renderer) Stats(st stat.Stats) {
	fmt.Fprintf(r.Out, "Examples: %d\n", st.NumExamples)
	fmt.Fprintf(r.Out, "Tokens: %d\n", st.NumTokens)
	fmt.Fprintf(r.Out, "Story max length: %d\n", st.StoryMaxLen)
	fmt.Fprintf(r.Out, "Query max length: %d\n", st.QueryMaxLen)

	lengths := make([]int, 0, len(st.StoryLenDis))
	for l := range st.StoryLenDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Fprintf(r.Out, "  %4d words: %d stories\n", l, st.StoryLenDis[l])
	}
}

func (r *Renderer) rule() {
	fmt.Fprintln(r.Out, "-")
}

func (r *Renderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}
