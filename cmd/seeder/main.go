package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"

	"github.com/telmin/peepsgo"
)

var sampleNames = []string{"Ann", "Bo", "Cyd", "Dee", "Eli", "Flo", "Gus", "Hal"}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	nAccts := flag.Int("accounts", 3, "number of sample accounts")
	nPeeps := flag.Int("peeps", 5, "sample peeps per account")
	flag.Parse()

	cfg, err := peepsgo.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading configuration")
	}

	if cfg.Database.Driver == "postgres" {
		lh, err := peepsgo.NewLocalHelper(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("error starting local helper")
		}
		if _, err = lh.InitDB(); err != nil {
			logger.Fatal().Err(err).Msg("error initializing database")
		}
	}

	ctx := context.Background()
	repo, err := peepsgo.NewEndpoint(ctx, cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting database")
	}
	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting snowflake node")
	}
	svc, err := peepsgo.NewService(repo, node, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}

	for i := 0; i < *nAccts; i++ {
		acct, err := svc.CreateAccount(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("error creating sample account")
		}
		for j := 0; j < *nPeeps; j++ {
			attrs := map[string]interface{}{
				"name": sampleNames[j%len(sampleNames)],
				"note": fmt.Sprintf("sample peep %d", j+1),
			}
			if _, err = svc.CreatePeep(ctx, acct.AccountID, attrs); err != nil {
				logger.Fatal().Err(err).Msg("error creating sample peep")
			}
		}
		logger.Info().
			Str("accountId", acct.AccountID).
			Int("peeps", *nPeeps).
			Msg("account seeded")
	}
}
