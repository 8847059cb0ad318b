package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"babiprep/storage/filesystem"
	"babiprep/vocab"
)

func vocabCommand() *cli.Command {
	flags := corpusFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "write the token-to-id mapping to this file instead of listing it",
			EnvVars: []string{"BABIPREP_VOCAB_PATH"},
		},
	)

	return &cli.Command{
		Name:   "vocab",
		Usage:  "Build the vocabulary over both splits and list or persist it.",
		Flags:  flags,
		Action: vocabAction,
	}
}

func vocabAction(c *cli.Context) error {
	train, test, _, err := loadSplits(c)
	if err != nil {
		return err
	}

	v := vocab.Build(train, test)

	if out := c.String("out"); out != "" {
		if err := filesystem.NewVocabStore(out).Write(v); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Vocabulary of %d tokens written to %s\n", v.Len(), out)
		return nil
	}

	for _, tok := range v.Tokens() {
		id, _ := v.ID(tok)
		fmt.Fprintf(c.App.Writer, "%6d %s\n", id, tok)
	}

	return nil
}
