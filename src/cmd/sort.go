package cmd

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"sortdemo/src/meta"
	sorts "sortdemo/src/sort"
	"time"
)

func stability(alg sorts.Algorithm) string {
	if alg.Stable {
		return "stable"
	}
	return "unstable"
}

func CmdSort(alg sorts.Algorithm) *cli.Command {
	return &cli.Command{
		Name:     alg.Name,
		Action:   sortAction(alg),
		Category: "SORT",
		Usage:    fmt.Sprintf("sort the sample with %s sort (%s)", alg.Name, stability(alg)),
		Description: fmt.Sprintf(`Sort the built-in sample of 16 integers with %s sort and print the result.
Equal elements %s.

Examples:
$ sortdemo %[1]s
# Record the run
$ sortdemo -m "mysql://root:@(127.0.0.1:3306)/sortdemo" %[1]s
$ sortdemo -m sqlite3://runs.db %[1]s`, alg.Name, equalOrder(alg)),
	}
}

func equalOrder(alg sorts.Algorithm) string {
	if alg.Stable {
		return "keep their input order"
	}
	return "may be reordered"
}

func CmdAll() *cli.Command {
	return &cli.Command{
		Name:     "all",
		Action:   sortAction(sorts.Algorithms()...),
		Category: "SORT",
		Usage:    "sort the sample with every algorithm",
		Description: `Run bubble, insertion and selection sort in turn, one line of output each.

Examples:
$ sortdemo all`,
	}
}

func sortAction(algs ...sorts.Algorithm) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		defer setup(ctx)()
		if ctx.NArg() > 0 {
			return errors.Errorf("%s takes no arguments, got %q", ctx.Command.Name, ctx.Args().Slice())
		}

		var store *meta.Store
		if uri := ctx.String("meta-url"); uri != "" {
			s, err := meta.Open(uri)
			if err != nil {
				return err
			}
			defer s.Close()
			store = s
		}

		for _, alg := range algs {
			run := sortSample(alg)
			fmt.Fprintln(ctx.App.Writer, run.Output)
			logger.Debugf("%s sort (%s): %d comparisons, %d swaps in %s, input sorted: %t",
				alg.Name, stability(alg), run.Comparisons, run.Swaps, run.Duration(),
				sorts.IsSorted(sorts.IntArray(run.Input)))
			if store == nil {
				continue
			}
			if err := store.Save(run); err != nil {
				return err
			}
			logger.Infof("recorded %s run %d", alg.Name, run.Id)
		}
		return nil
	}
}

func sortSample(alg sorts.Algorithm) *meta.Run {
	data := sorts.IntArray(sorts.Sample())
	counter := sorts.NewCounter(data)

	start := time.Now()
	alg.Sort(counter)
	elapsed := time.Since(start)

	return &meta.Run{
		Algorithm:   alg.Name,
		Length:      len(data),
		Input:       sorts.Sample(),
		Output:      []int(data),
		Comparisons: counter.Comparisons,
		Swaps:       counter.Swaps,
		Elapsed:     int64(elapsed),
	}
}
