package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pageza/recipe-translate/backend/config"
	"github.com/pageza/recipe-translate/backend/internal/cli"
	"github.com/pageza/recipe-translate/backend/internal/logger"
	"github.com/pageza/recipe-translate/backend/internal/provider/translation"
	"github.com/pageza/recipe-translate/backend/internal/service"
)

func main() {
	build := func() (service.IRecipeService, translation.Provider, error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, nil, err
		}
		// Logs go to stderr so stdout stays machine readable
		log := logger.New(cfg.LogLevel, "console", os.Stderr)
		svc, provider, err := service.NewRecipeServiceFromConfig(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return svc, provider, nil
	}

	if err := cli.CreateRootCommand(build).Execute(); err != nil {
		var resultErr *cli.ResultError
		if !errors.As(err, &resultErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
