package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"babiprep/query"
	"babiprep/render"
	"babiprep/vocab"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:   "query",
		Usage:  "Enter interactive mode: look up tokens, ids and parsed stories.",
		Flags:  corpusFlags(),
		Action: queryAction,
	}
}

func queryAction(c *cli.Context) error {
	train, test, _, err := loadSplits(c)
	if err != nil {
		return err
	}

	v := vocab.Build(train, test)

	r := render.NewRenderer(os.Stdout)
	h := query.NewHandler(v, append(train, test...), r)
	return h.Run()
}
