package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"babiprep/render"
	"babiprep/storage/filesystem"
	"babiprep/story"
	"babiprep/vectorize"
	"babiprep/vocab"
)

func prepCommand() *cli.Command {
	flags := corpusFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:    "vocab",
			Aliases: []string{"o"},
			Value:   "vocab.json",
			Usage:   "path for the serialized token-to-id mapping",
			EnvVars: []string{"BABIPREP_VOCAB_PATH"},
		},
	)

	return &cli.Command{
		Name:   "prep",
		Usage:  "Run the full pipeline: fetch, parse, build vocabulary, vectorize.",
		Flags:  flags,
		Action: prepAction,
	}
}

func prepAction(c *cli.Context) error {
	train, test, challenge, err := loadSplits(c)
	if err != nil {
		return err
	}

	v := vocab.Build(train, test)
	cfg := vectorize.NewConfig(v, train, test)

	r := render.NewRenderer(c.App.Writer)
	r.Summary(challenge.Name, v.Size(), cfg, len(train), len(test))

	if len(train) > 0 {
		fmt.Fprintln(c.App.Writer, "Here's what a story triple looks like (input, query, answer):")
		r.Example(train[0])
	}

	store := filesystem.NewVocabStore(c.String("vocab"))
	if err := store.Write(v); err != nil {
		return fmt.Errorf("persisting vocabulary: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Vocabulary written to %s\n", c.String("vocab"))

	trainSet, err := vectorizeSplit(cfg, train)
	if err != nil {
		return fmt.Errorf("train split: %w", err)
	}
	testSet, err := vectorizeSplit(cfg, test)
	if err != nil {
		return fmt.Errorf("test split: %w", err)
	}

	r.Shapes("train", trainSet)
	r.Shapes("test", testSet)

	return nil
}

func vectorizeSplit(cfg vectorize.Config, split []story.FlatExample) (*vectorize.Set, error) {
	uiprogress.Start()
	bar := uiprogress.AddBar(len(split))
	bar.AppendCompleted()
	bar.PrependElapsed()

	set, err := cfg.Vectorize(split, func(done, total int) {
		bar.Incr()
	})
	uiprogress.Stop()

	return set, err
}
