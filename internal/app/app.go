// Package app assembles the geoloc command line: configuration, logging,
// the Nominatim client and the geo service, plus the HTTP API behind serve.
package app

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geoloc/internal/adapter/geocoding"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/nominatim"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geoloc/internal/pkg/geodesy"
	"github.com/marcos-nsantos/geoloc/internal/usecase/geo"
)

const (
	flagLogLevel     = "log-level"
	flagNominatimURL = "nominatim-url"
	flagSeed         = "seed"
	flagPlace        = "place"
	flagLocation     = "location"
	flagRadius       = "radius"
	flagLength       = "length"
	flagPort         = "port"
)

type App struct {
	cfg      *config.Config
	geocoder geocoding.Geocoder
	out      io.Writer
	errOut   io.Writer

	logger   *zap.Logger
	upstream geocoding.Geocoder
	rng      geodesy.RandomSource
	service  *geo.Service
}

type Option func(*App)

// WithGeocoder replaces the Nominatim client.
func WithGeocoder(g geocoding.Geocoder) Option {
	return func(a *App) {
		a.geocoder = g
	}
}

func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

func New(cfg *config.Config, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run parses args, including the program name, and executes the selected
// command.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.command().RunContext(ctx, args)
}

func (a *App) command() *cli.App {
	return &cli.App{
		Name:                 config.AppName,
		Usage:                "geocode places and do geodesic math on the command line",
		Version:              config.Version,
		Writer:               a.out,
		ErrWriter:            a.errOut,
		EnableBashCompletion: true,
		// Errors are reported by the caller, which also picks the exit status.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "log level (debug, info, warn, error)",
				Value: a.cfg.Log.Level,
			},
			&cli.StringFlag{
				Name:  flagNominatimURL,
				Usage: "base URL of the Nominatim service",
				Value: a.cfg.Nominatim.BaseURL,
			},
			&cli.Uint64Flag{
				Name:  flagSeed,
				Usage: "seed for random sampling, for reproducible output",
			},
		},
		Before:   a.setup,
		After:    a.teardown,
		Commands: a.commands(),
	}
}

func (a *App) setup(c *cli.Context) error {
	a.cfg.Log.Level = c.String(flagLogLevel)
	a.cfg.Nominatim.BaseURL = c.String(flagNominatimURL)

	logger, err := observability.NewLogger(a.cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger

	a.upstream = a.geocoder
	if a.upstream == nil {
		a.upstream = nominatim.NewClient(a.cfg.Nominatim)
	}

	if c.IsSet(flagSeed) {
		a.rng = geodesy.NewSeededSource(c.Uint64(flagSeed))
	}

	a.service = geo.NewService(geocoding.Instrument(a.upstream, nil, a.logger), a.rng)

	a.logger.Debug("configured",
		zap.String("nominatim_url", a.cfg.Nominatim.BaseURL),
		zap.Bool("seeded", c.IsSet(flagSeed)),
	)
	return nil
}

func (a *App) teardown(*cli.Context) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}
