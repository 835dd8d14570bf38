package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/subway-export/config"
	"github.com/theoremus-urban-solutions/subway-export/converter"
	"github.com/theoremus-urban-solutions/subway-export/formatter"
	"github.com/theoremus-urban-solutions/subway-export/internal"
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "model",
		Aliases: []string{"m"},
		Usage:   "Network model JSON, as a file path or an http(s) URL",
	},
	&cli.StringFlag{
		Name:  "cache",
		Usage: "Cache document path; caching is disabled when empty",
	},
	&cli.BoolFlag{
		Name:  "strict-entrances",
		Usage: "Reject cached cities whose entrances moved or disappeared",
	},
	&cli.Float64Flag{
		Name:  "threshold",
		Usage: "Distance in meters a cached station may drift",
	},
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the network model",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Export path; stdout when empty or -",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Cities rebuilt in parallel",
			},
			&cli.BoolFlag{
				Name:  "indent",
				Usage: "Pretty-print the export",
			},
		}, inputFlags...),
		Action: func(c *cli.Context) error {
			cfg, err := setup(c)
			if err != nil {
				return err
			}

			net, err := newFetcher().fetchModel(cfg.Input.Model)
			if err != nil {
				return err
			}
			log.Info().Str("model", cfg.Input.Model).Int("cities", len(net.Cities)).Msg("Loaded network model")

			conv := converter.NewConverter(converterOptions(cfg))
			doc, err := conv.Process(net)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			rb := formatter.NewResponseBuilder()
			if cfg.Export.Indent {
				rb = rb.Indented()
			}
			return rb.WriteFile(cfg.Export.Output, doc)
		},
	}
}

func checkCacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "check-cache",
		Usage: "Report which cached cities are still usable",
		Flags: inputFlags,
		Action: func(c *cli.Context) error {
			cfg, err := setup(c)
			if err != nil {
				return err
			}
			if cfg.Cache.Path == "" {
				return errors.New("no cache path configured")
			}

			net, err := newFetcher().fetchModel(cfg.Input.Model)
			if err != nil {
				return err
			}

			conv := converter.NewConverter(converterOptions(cfg))
			for _, check := range conv.CheckCache(net) {
				event := log.Info().Str("city", check.City).Bool("good", check.Good)
				switch {
				case !check.Cached:
					event.Msg("No cache entry")
				case check.Report.Usable:
					event.Strs("entrances", check.Report.Entrances).Msg("Cache usable")
				default:
					event.Str("reason", check.Report.Reason).Msg("Cache stale")
				}
			}
			return nil
		},
	}
}

// setup loads the config file, applies flag overrides, validates and
// initializes logging.
func setup(c *cli.Context) (config.AppConfig, error) {
	path := c.String("config")
	err := config.LoadAppConfig(path)
	if errors.Is(err, config.ErrNoConfig) {
		config.Config = config.AppConfig{}
		config.Config.ApplyDefaults()
	} else if err != nil {
		return config.AppConfig{}, err
	}

	cfg := applyFlags(c, config.Config)
	if err := cfg.Validate(); err != nil {
		return config.AppConfig{}, err
	}
	if err := internal.InitLogging(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return config.AppConfig{}, err
	}
	return cfg, nil
}

func applyFlags(c *cli.Context, cfg config.AppConfig) config.AppConfig {
	if c.IsSet("model") {
		cfg.Input.Model = c.String("model")
	}
	if c.IsSet("cache") {
		cfg.Cache.Path = c.String("cache")
	}
	if c.IsSet("strict-entrances") {
		cfg.Cache.StrictEntrances = c.Bool("strict-entrances")
	}
	if c.IsSet("threshold") {
		cfg.Cache.Threshold = c.Float64("threshold")
	}
	if c.IsSet("output") {
		cfg.Export.Output = c.String("output")
	}
	if c.IsSet("workers") {
		cfg.Export.Workers = c.Int("workers")
	}
	if c.IsSet("indent") {
		cfg.Export.Indent = c.Bool("indent")
	}
	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Logging.Format = c.String("log-format")
	}
	return cfg
}

func converterOptions(cfg config.AppConfig) converter.Options {
	return converter.Options{
		CachePath:       cfg.Cache.Path,
		Threshold:       cfg.Cache.Threshold,
		StrictEntrances: cfg.Cache.StrictEntrances,
		Workers:         cfg.Export.Workers,
	}
}
