package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	Version   = "DEV"
	BuildTime = "unknown"
)

func newApp() *cli.App {
	app := &cli.App{}
	app.Name = "kyberdemo"
	app.Usage = "Kyber key encapsulation self-test and key exchange tool"
	app.UsageText = "kyberdemo [global options] command [command options]"
	app.Version = fmt.Sprintf("%s (built %s)", Version, BuildTime)
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    paramsFlag,
			Usage:   "Parameter set: Kyber512, Kyber768 or Kyber1024",
			EnvVars: []string{"KYBER_PARAMS"},
		},
		&cli.StringFlag{
			Name:    logLevelFlag,
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"KYBER_LOGLEVEL"},
		},
		&cli.StringFlag{
			Name:  configFlag,
			Usage: "YAML configuration file (keys: params, loglevel, iterations)",
		},
	}
	app.Before = before
	app.Commands = commands()
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "kyberdemo: %s\n", err)
		os.Exit(1)
	}
}
