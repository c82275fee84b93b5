package app

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geoloc/internal/adapter/presenter"
	"github.com/marcos-nsantos/geoloc/internal/domain"
	"github.com/marcos-nsantos/geoloc/internal/domain/valueobject"
	"github.com/marcos-nsantos/geoloc/internal/usecase/geo"
)

func placeFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     flagPlace,
		Aliases:  []string{"P"},
		Usage:    "free-form place name, e.g. \"Stuttgart\"",
		Required: required,
	}
}

func locationFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     flagLocation,
		Aliases:  []string{"L"},
		Usage:    "coordinates as `LON,LAT`",
		Required: required,
	}
}

func (a *App) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "loc",
			Usage:  "print the coordinates of a place",
			Flags:  []cli.Flag{placeFlag(true)},
			Action: a.locate,
		},
		{
			Name:   "rev",
			Usage:  "print the name of the place at a location",
			Flags:  []cli.Flag{locationFlag(true)},
			Action: a.reverse,
		},
		{
			Name:      "dis",
			Usage:     "print the distance in metres between two locations",
			ArgsUsage: "LON,LAT LON,LAT",
			// Negative longitudes would otherwise be read as flags.
			SkipFlagParsing: true,
			Action:          a.distance,
		},
		{
			Name:  "rnd",
			Usage: "print a uniformly random location within a radius",
			Flags: []cli.Flag{
				placeFlag(false),
				locationFlag(false),
				&cli.Float64Flag{
					Name:     flagRadius,
					Aliases:  []string{"R"},
					Usage:    "radius in `KM`",
					Required: true,
				},
			},
			Action: a.randomPoint,
		},
		{
			Name:  "bbox",
			Usage: "print the bounding box of a square centred on a location",
			Flags: []cli.Flag{
				placeFlag(false),
				locationFlag(false),
				&cli.Float64Flag{
					Name:     flagLength,
					Usage:    "edge length in `KM`",
					Required: true,
				},
			},
			Action: a.boundingBox,
		},
		{
			Name:  "serve",
			Usage: "serve the same operations over HTTP",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  flagPort,
					Usage: "listen port",
					Value: a.cfg.Server.Port,
				},
			},
			Action: a.serve,
		},
	}
}

func (a *App) locate(c *cli.Context) error {
	place, err := a.service.Locate(c.Context, c.String(flagPlace))
	if err != nil {
		return err
	}

	a.logger.Debug("located", zap.String("display_name", place.DisplayName))
	_, err = fmt.Fprintln(c.App.Writer, presenter.Point(place.Point))
	return err
}

func (a *App) reverse(c *cli.Context) error {
	point, err := valueobject.ParsePoint(c.String(flagLocation))
	if err != nil {
		return err
	}

	place, err := a.service.Reverse(c.Context, point)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, place.DisplayName)
	return err
}

func (a *App) distance(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		return cli.ShowCommandHelp(c, c.Command.Name)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: dis takes exactly two locations, got %d", domain.ErrInvalidArgument, len(args))
	}

	from, err := valueobject.ParsePoint(args[0])
	if err != nil {
		return err
	}
	to, err := valueobject.ParsePoint(args[1])
	if err != nil {
		return err
	}

	meters, err := a.service.DistanceMeters(from, to)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, presenter.Meters(meters))
	return err
}

func (a *App) randomPoint(c *cli.Context) error {
	center, err := centerFromFlags(c)
	if err != nil {
		return err
	}

	p, err := a.service.RandomPoint(c.Context, geo.RandomPointInput{
		Center:   center,
		RadiusKm: c.Float64(flagRadius),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, presenter.Point(p))
	return err
}

func (a *App) boundingBox(c *cli.Context) error {
	center, err := centerFromFlags(c)
	if err != nil {
		return err
	}

	bb, err := a.service.BoundingBox(c.Context, geo.BoundingBoxInput{
		Center:       center,
		EdgeLengthKm: c.Float64(flagLength),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, presenter.BoundingBox(bb))
	return err
}

// centerFromFlags reads -P or -L. Whether exactly one was given is checked
// by the service.
func centerFromFlags(c *cli.Context) (geo.CenterInput, error) {
	input := geo.CenterInput{Place: c.String(flagPlace)}

	if c.IsSet(flagLocation) {
		p, err := valueobject.ParsePoint(c.String(flagLocation))
		if err != nil {
			return geo.CenterInput{}, err
		}
		input.Location = &p
	}

	return input, nil
}
