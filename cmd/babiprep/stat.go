package main

import (
	"github.com/urfave/cli/v2"

	"babiprep/render"
	"babiprep/stat"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:   "stat",
		Usage:  "Show statistics of the parsed corpus (both splits).",
		Flags:  corpusFlags(),
		Action: statAction,
	}
}

func statAction(c *cli.Context) error {
	train, test, _, err := loadSplits(c)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(train)
	hdl.Aggregate(test)

	r := render.NewRenderer(c.App.Writer)
	r.Stats(hdl.Get())

	return nil
}
