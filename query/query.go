// Package query provides the interactive dataset explorer.
package query

import (
	"fmt"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"babiprep/render"
	"babiprep/story"
	"babiprep/vocab"
)

const completionThreshold = 2

type Handler struct {
	Vocab    *vocab.Vocab
	Examples []story.FlatExample
	Renderer *render.Renderer
}

func NewHandler(v *vocab.Vocab, examples []story.FlatExample, r *render.Renderer) *Handler {
	return &Handler{
		Vocab:    v,
		Examples: examples,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 <token>: vocabulary id, id <n>: token, story <n>: example, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("babiprep query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)
		if err := h.Eval(in); err != nil {
			fmt.Printf("❌ %s\n", err)
		}
	}
}

// Eval resolves one REPL input line: a bare token prints its vocabulary id,
// "id <n>" prints the token behind an id, "story <n>" renders the n-th
// parsed example.
func (h *Handler) Eval(in string) error {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return nil
	}

	switch {
	case fields[0] == "story" && len(fields) == 2:
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("invalid story index %q", fields[1])
		}
		if n < 0 || n >= len(h.Examples) {
			return fmt.Errorf("story %d out of range (0..%d)", n, len(h.Examples)-1)
		}
		h.Renderer.Example(h.Examples[n])

	case fields[0] == "id" && len(fields) == 2:
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", fields[1])
		}
		tok, ok := h.Vocab.Token(n)
		if !ok {
			return fmt.Errorf("id %d maps to no token", n)
		}
		fmt.Fprintf(h.Renderer.Out, "      %d -> %s\n", n, tok)

	case len(fields) == 1:
		id, ok := h.Vocab.ID(fields[0])
		if !ok {
			return fmt.Errorf("token %q not in vocabulary", fields[0])
		}
		fmt.Fprintf(h.Renderer.Out, "      %s -> %d\n", fields[0], id)

	default:
		return fmt.Errorf("unknown query %q", in)
	}

	return nil
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		word := in.GetWordBeforeCursor()
		if len(word) < completionThreshold {
			return s
		}

		for _, tok := range h.Vocab.Tokens() {
			if strings.HasPrefix(tok, word) {
				s = append(s, prompt.Suggest{Text: tok})
			}
		}

		return s
	}
}
