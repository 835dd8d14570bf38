package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "subway-export",
		Usage:       "Export validated subway networks for mapsme",
		Description: "Converts a validated transit network model into the mapsme routing format, reusing cached cities whose stations did not move",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path of the YAML config; config.yml is used when present",
				EnvVars: []string{"SUBWAY_EXPORT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
		},
		Commands: []*cli.Command{
			exportCommand(),
			checkCacheCommand(),
		},
	}
}
