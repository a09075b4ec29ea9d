package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/telmin/peepsgo"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfg, err := peepsgo.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading configuration")
	}

	repo, err := peepsgo.NewEndpoint(context.Background(), cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting database")
	}

	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting snowflake node")
	}

	var svc peepsgo.Service
	svc, err = peepsgo.NewService(repo, node, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}

	limits := peepsgo.NewServiceLimits(256, 64)
	brkrs := peepsgo.NewServiceBreaker(gobreaker.Settings{Name: "storage"})
	for _, mw := range []peepsgo.Middleware{
		peepsgo.NewCircuitBreakMiddleware(brkrs),
		peepsgo.NewLimitMiddleware(limits),
		peepsgo.NewValidationMiddleware(),
	} {
		svc = mw(svc)
	}
	hndlr := peepsgo.NewHTTPHandler(svc, &logger)

	logger.Info().
		Str("addr", cfg.Listen).
		Str("driver", cfg.Database.Driver).
		Msg("listening")
	if err = http.ListenAndServe(cfg.Listen, hndlr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
