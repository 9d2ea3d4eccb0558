package cmd

import (
	"github.com/urfave/cli/v2"
	sorts "sortdemo/src/sort"
)

const version = "0.1.0"

func newApp() *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}

	cmds := make([]*cli.Command, 0, 5)
	for _, alg := range sorts.Algorithms() {
		cmds = append(cmds, CmdSort(alg))
	}
	cmds = append(cmds, CmdAll(), CmdHistory())

	return &cli.App{
		Name:                 "sortdemo",
		Usage:                "classic O(n²) sorting algorithms on a fixed sample",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands:             cmds,
	}
}

func Main(args []string) error {
	err := newApp().Run(args)
	if err != nil {
		logger.Errorf("%s", err)
	}
	return err
}
