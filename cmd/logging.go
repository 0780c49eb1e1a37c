package cmd

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

// globalFlags is the subset of cli.Context read for the app-wide flags
type globalFlags interface {
	GlobalBool(name string) bool
	GlobalString(name string) string
}

// setupLogging applies --log-level, then -v and -vv which only ever raise verbosity
func setupLogging(ctx globalFlags) error {
	level := log.Notice
	if name := ctx.GlobalString("log-level"); name != "" {
		parsed, err := log.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		level = parsed
	}

	if ctx.GlobalBool("v") {
		level = min(level, log.Info)
	}
	if ctx.GlobalBool("vv") {
		level = log.Debug
	}

	log.SetLevel(level)
	return nil
}

// LoggingFlags are the app-wide logging flags
var LoggingFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "v",
		Usage: "enable verbose logging",
	},
	cli.BoolFlag{
		Name:  "vv",
		Usage: "enable even more verbose logging",
	},
	cli.StringFlag{
		Name:  "log-level",
		Usage: "minimum level to log: debug, info, notice, warning or error",
	},
}
