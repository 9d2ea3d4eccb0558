package cmd

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/google/gops/agent"
	"github.com/juicedata/juicefs/pkg/utils"
	"github.com/mattn/go-isatty"
	"github.com/pyroscope-io/client/pyroscope"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
)

var logger = utils.GetLogger("sortdemo")

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug", "v"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:  "no-agent",
			Usage: "disable pprof (:6060) and gops (:6070) agent",
		},
		&cli.StringFlag{
			Name:  "pyroscope",
			Usage: "pyroscope address",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
		&cli.StringFlag{
			Name:    "meta-url",
			Aliases: []string{"m"},
			EnvVars: []string{"SORTDEMO_META_URL"},
			Usage:   "META-URL of the run history store (mysql://user:pass@(host:3306)/db)",
		},
	}
}

// setup applies the global flags and returns a function releasing what it
// started.
func setup(c *cli.Context) func() {
	if c.Bool("trace") {
		utils.SetLogLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		utils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		utils.SetLogLevel(logrus.WarnLevel)
	} else {
		utils.SetLogLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		utils.DisableLogColor()
	}
	color.NoColor = c.Bool("no-color") || !isatty.IsTerminal(os.Stdout.Fd())

	var cleanups []func()
	if !c.Bool("no-agent") {
		go func() {
			for port := 6060; port < 6100; port++ {
				_ = http.ListenAndServe(fmt.Sprintf("127.0.0.1:%d", port), nil)
			}
		}()
		go func() {
			for port := 6070; port < 6100; port++ {
				_ = agent.Listen(agent.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)})
			}
		}()
		cleanups = append(cleanups, agent.Close)
	}

	if c.IsSet("pyroscope") {
		tags := make(map[string]string)
		if hostname, err := os.Hostname(); err == nil {
			tags["hostname"] = hostname
		}
		tags["pid"] = strconv.Itoa(os.Getpid())
		tags["version"] = c.App.Version

		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: fmt.Sprintf("sortdemo.%s", c.Command.Name),
			ServerAddress:   c.String("pyroscope"),
			Logger:          logger,
			Tags:            tags,
			AuthToken:       os.Getenv("PYROSCOPE_AUTH_TOKEN"),
			ProfileTypes:    pyroscope.DefaultProfileTypes,
		})
		if err != nil {
			logger.Errorf("start pyroscope agent: %v", err)
		} else {
			cleanups = append(cleanups, func() { _ = profiler.Stop() })
		}
	}

	return func() {
		for _, f := range cleanups {
			f()
		}
	}
}
