package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcos-nsantos/geoloc/internal/app"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
	"github.com/marcos-nsantos/geoloc/internal/pkg/apperror"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := app.New(cfg).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(apperror.ExitCode(err))
	}
}
