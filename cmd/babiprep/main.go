package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"babiprep/corpus"
)

func main() {
	app := &cli.App{
		Name:    "babiprep",
		Usage:   "prepare the bAbI QA corpus: tokenize, build the vocabulary, vectorize",
		Version: "0.1.0",
		Commands: []*cli.Command{
			prepCommand(),
			statCommand(),
			showCommand(),
			vocabCommand(),
			queryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		var acqErr *corpus.AcquisitionError
		if errors.As(err, &acqErr) {
			fmt.Fprintln(os.Stderr, acqErr.Remediation())
		}
		fmt.Fprintf(os.Stderr, "babiprep: %v\n", err)
		os.Exit(1)
	}
}
