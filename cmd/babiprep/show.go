package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"babiprep/render"
	"babiprep/story"
)

func showCommand() *cli.Command {
	flags := corpusFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:  "split",
			Value: "train",
			Usage: "which split to show (train or test)",
		},
		&cli.IntFlag{
			Name:  "start",
			Usage: "index of the first example to show",
		},
		&cli.IntFlag{
			Name:    "n",
			Value:   1,
			Usage:   "number of examples to show (-1 for all)",
			Aliases: []string{"count"},
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "emit the examples as JSON",
		},
	)

	return &cli.Command{
		Name:   "show",
		Usage:  "Show parsed (story, question, answer) triples.",
		Flags:  flags,
		Action: showAction,
	}
}

func showAction(c *cli.Context) error {
	train, test, _, err := loadSplits(c)
	if err != nil {
		return err
	}

	var split []story.FlatExample
	switch c.String("split") {
	case "train":
		split = train
	case "test":
		split = test
	default:
		return fmt.Errorf("unknown split %q, want train or test", c.String("split"))
	}

	start := c.Int("start")
	if start < 0 || start >= len(split) {
		return fmt.Errorf("start %d out of range (0..%d)", start, len(split)-1)
	}

	end := len(split)
	if n := c.Int("n"); n >= 0 && start+n < end {
		end = start + n
	}

	if c.Bool("json") {
		return render.NewJSONRenderer(c.App.Writer).Render(split[start:end])
	}

	r := render.NewRenderer(c.App.Writer)
	for _, ex := range split[start:end] {
		r.Example(ex)
	}

	return nil
}
