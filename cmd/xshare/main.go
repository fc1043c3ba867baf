package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/xshare/internal/buildinfo"
	"github.com/dmitrijs2005/xshare/internal/cli"
	"github.com/dmitrijs2005/xshare/internal/config"
	"github.com/dmitrijs2005/xshare/internal/logging"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run(ctx)
	return nil
}
