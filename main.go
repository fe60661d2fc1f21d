/* main.go
 * The "main" method for running the pool. For details see `readme.md`
 * Usage: go run . -mode=build -year=2025 -out=site/data
 *        go run . -mode=bot -test=false
 *        go run . -mode=serve
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"playoff-pool/api/api"
	"playoff-pool/api/config"
	"playoff-pool/bot"
	"playoff-pool/web"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	if err := godotenv.Load(); err != nil {
		logger.WithError(err).Debug("No .env file loaded")
	}

	//Flags
	modePtr := flag.String("mode", "build", "What to run: build, bot or serve")
	yearPtr := flag.Int("year", 0, "Year to build, defaults to POOL_YEAR or the current year")
	allPtr := flag.Bool("all", false, "Build every year that has a folder in the data directory")
	outPtr := flag.String("out", "site/data", "Directory the build writes <year>.json and yearly_index.json to")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")
	flag.Parse()

	logger.SetLevel(parseLogLevel(os.Getenv("LOG_LEVEL")))

	if err := run(*modePtr, *yearPtr, *allPtr, *outPtr, *testPtr, logger); err != nil {
		logger.WithError(err).Error("Exiting")
		os.Exit(1)
	}
}

func run(mode string, year int, all bool, out string, test string, logger *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := api.NewAPI(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize API: %w", err)
	}
	if a.Store != nil {
		defer func() {
			if err := a.Store.GetClient().Disconnect(context.Background()); err != nil {
				logger.WithError(err).Warn("Failed to disconnect from mongo")
			}
		}()
	}

	switch mode {
	case "build":
		years, err := resolveYears(year, all, cfg.DataDir, cfg.Year)
		if err != nil {
			return err
		}
		return buildYears(ctx, a, years, out)

	case "bot":
		isTest, err := convertStrToBool(test)
		if err != nil {
			return fmt.Errorf("invalid \"test\" flag, should be true or false: %w", err)
		}
		token, err := cfg.DiscordToken(!isTest)
		if err != nil {
			return err
		}
		b, err := bot.NewBot(token, a, logger)
		if err != nil {
			return err
		}
		return b.Run(ctx)

	case "serve":
		return web.Start(ctx, web.Config{Addr: cfg.HTTPAddr, API: a, Logger: logger})
	}
	return fmt.Errorf("invalid mode %q, should be build, bot or serve", mode)
}
