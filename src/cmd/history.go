package cmd

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"io"
	"sortdemo/src/meta"
	"sortdemo/src/utils"
)

const treeTimeFormat = "2006-01-02 15:04:05"

var algorithmColors = map[string]color.Attribute{
	"bubble":    color.FgCyan,
	"insertion": color.FgGreen,
	"selection": color.FgMagenta,
}

func CmdHistory() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Action:    history,
		Category:  "TOOL",
		Usage:     "show recorded sort runs",
		ArgsUsage: "",
		Description: `It is used to display the runs recorded with --meta-url, newest first.

Examples:
$ sortdemo -m "mysql://root:mypassword@(127.0.0.1:3306)/sortdemo" history
# A safer alternative
$ export META_PASSWORD=mypassword
$ sortdemo -m "mysql://root:@(127.0.0.1:3306)/sortdemo" history --tree`,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "group the runs by algorithm in a tree",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Value:   true,
				Usage:   "display the runs in list format",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "number of runs to show (0 for all)",
			},
		},
	}
}

func history(ctx *cli.Context) error {
	defer setup(ctx)()
	uri := ctx.String("meta-url")
	if uri == "" {
		return errors.New("history requires --meta-url")
	}

	store, err := meta.Open(uri)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(ctx.Int("limit"))
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d runs", len(runs))

	if ctx.Bool("tree") {
		showTree(ctx.App.Writer, runs)
	} else if ctx.Bool("list") {
		showList(ctx.App.Writer, runs)
	}
	return nil
}

func algorithmName(name string) string {
	if attr, ok := algorithmColors[name]; ok {
		return color.New(attr, color.Bold).Sprintf("%-9s", name)
	}
	return fmt.Sprintf("%-9s", name)
}

func showList(w io.Writer, runs []meta.Run) {
	for _, r := range runs {
		fmt.Fprintf(w, "%-6d %s n=%-4d cmp=%-6d swp=%-6d %-12s %s\n",
			r.Id, algorithmName(r.Algorithm), r.Length, r.Comparisons, r.Swaps,
			r.Duration(), humanize.Time(r.Created))
	}
}

func showTree(w io.Writer, runs []meta.Run) {
	paths := make([]string, 0, len(runs))
	for _, r := range runs {
		paths = append(paths, fmt.Sprintf("%s/#%d %s cmp=%d swp=%d",
			r.Algorithm, r.Id, r.Created.Format(treeTimeFormat), r.Comparisons, r.Swaps))
	}

	root := &utils.Node{}
	root.Build(paths)
	root.Show(w)
}
