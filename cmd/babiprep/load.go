package main

import (
	"bytes"
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"babiprep/corpus"
	"babiprep/story"
)

// corpusFlags are shared by every command that reads the corpus.
func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "challenge",
			Aliases: []string{"c"},
			Value:   corpus.DefaultChallenge,
			Usage:   "challenge variant to load",
			EnvVars: []string{"BABIPREP_CHALLENGE"},
		},
		&cli.StringFlag{
			Name:    "cache-dir",
			Value:   corpus.DefaultCacheDir(),
			Usage:   "directory holding the downloaded archive",
			EnvVars: []string{"BABIPREP_CACHE_DIR"},
		},
		&cli.StringFlag{
			Name:  "url",
			Value: corpus.DefaultURL,
			Usage: "archive URL",
		},
		&cli.BoolFlag{
			Name:    "only-supporting",
			Aliases: []string{"s"},
			Usage:   "restrict each question's context to its supporting facts",
		},
		&cli.IntFlag{
			Name:  "max-length",
			Usage: "discard stories with this many tokens or more (0 keeps all)",
		},
	}
}

// loadSplits fetches the archive (downloading with a progress bar when not
// cached) and parses the train and test splits of the selected challenge.
func loadSplits(c *cli.Context) (train, test []story.FlatExample, challenge corpus.Challenge, err error) {
	challenge, err = corpus.ChallengeByName(c.String("challenge"))
	if err != nil {
		return nil, nil, challenge, err
	}

	f := corpus.NewFetcher(c.String("cache-dir"))
	f.URL = c.String("url")

	uiprogress.Start()
	bar := uiprogress.AddBar(1)
	bar.AppendCompleted()
	bar.PrependElapsed()
	f.Progress = func(written, total int64) {
		if total > 0 && bar.Total <= 1 {
			bar.Total = int(total)
		}
		if int(written) <= bar.Total {
			bar.Set(int(written))
		}
	}

	path, err := f.Fetch()
	uiprogress.Stop()
	if err != nil {
		return nil, nil, challenge, err
	}

	train, err = loadSplit(path, challenge, "train", c)
	if err != nil {
		return nil, nil, challenge, err
	}

	test, err = loadSplit(path, challenge, "test", c)
	if err != nil {
		return nil, nil, challenge, err
	}

	return train, test, challenge, nil
}

func loadSplit(archivePath string, challenge corpus.Challenge, split string, c *cli.Context) ([]story.FlatExample, error) {
	member := challenge.Member(split)

	data, err := corpus.OpenSplit(archivePath, member)
	if err != nil {
		return nil, err
	}

	examples, err := story.Parse(bytes.NewReader(data), c.Bool("only-supporting"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", member, err)
	}

	return story.Flatten(examples, c.Int("max-length")), nil
}
