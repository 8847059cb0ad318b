// Package story parses the numbered-line bAbI corpus format into
// (context, question, answer) triples.
package story

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"babiprep/token"
)

// Sentence is one tokenized line of narrative context.
type Sentence []string

// Example pairs the context sentences accumulated up to a question line
// with the tokenized question and its single-word answer label.
type Example struct {
	Context  []Sentence
	Question []string
	Answer   string
}

// FlatExample is an Example whose context has been flattened into a single
// token sequence.
type FlatExample struct {
	Story    []string `json:"story"`
	Question []string `json:"question"`
	Answer   string   `json:"answer"`
}

// Parse reads corpus lines of the form "<id> <text>". An id of 1 starts a
// new story. A text containing tabs is a question event holding
// "question\tanswer\tsupporting-ids"; the answer is kept verbatim as one
// label token. With onlySupporting the context of a question is restricted
// to the sentences at the listed 1-based supporting indices, in listed
// order; otherwise it is every non-empty sentence accumulated so far.
// Examples are returned in corpus order.
func Parse(r io.Reader, onlySupporting bool) ([]Example, error) {
	var examples []Example
	var story []Sentence

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		id, rest, err := splitID(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if id == 1 {
			story = nil
		}

		if !strings.Contains(rest, "\t") {
			story = append(story, token.Tokenize(rest))
			continue
		}

		question, answer, supporting, err := splitQuestion(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		var context []Sentence
		if onlySupporting {
			context, err = supportingContext(story, supporting)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		} else {
			for _, s := range story {
				if len(s) > 0 {
					context = append(context, s)
				}
			}
		}

		examples = append(examples, Example{
			Context:  context,
			Question: token.Tokenize(question),
			Answer:   answer,
		})

		// The placeholder keeps the 1-based supporting-fact indices of
		// later questions aligned with the story buffer.
		story = append(story, nil)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return examples, nil
}

// Flatten joins each example's context sentences into one story sequence.
// When maxLength is positive, examples whose flattened story has maxLength
// or more tokens are discarded.
func Flatten(examples []Example, maxLength int) []FlatExample {
	flat := make([]FlatExample, 0, len(examples))
	for _, ex := range examples {
		var story []string
		for _, s := range ex.Context {
			story = append(story, s...)
		}

		if maxLength > 0 && len(story) >= maxLength {
			continue
		}

		flat = append(flat, FlatExample{
			Story:    story,
			Question: ex.Question,
			Answer:   ex.Answer,
		})
	}

	return flat
}

func splitID(line string) (int, string, error) {
	idStr, rest, found := strings.Cut(line, " ")
	if !found {
		return 0, "", fmt.Errorf("missing id separator in %q", line)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, "", fmt.Errorf("invalid line id %q", idStr)
	}

	return id, rest, nil
}

func splitQuestion(rest string) (question, answer, supporting string, err error) {
	parts := strings.Split(rest, "\t")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("question line has %d tab-separated fields, want 3", len(parts))
	}
	return parts[0], parts[1], parts[2], nil
}

func supportingContext(story []Sentence, supporting string) ([]Sentence, error) {
	ids := strings.Fields(supporting)
	context := make([]Sentence, 0, len(ids))
	for _, s := range ids {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid supporting fact id %q", s)
		}
		if n < 1 || n > len(story) {
			return nil, fmt.Errorf("supporting fact id %d out of range", n)
		}
		context = append(context, story[n-1])
	}
	return context, nil
}
