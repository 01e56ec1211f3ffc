package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hitandblow/internal/config"
	"github.com/robalobadob/hitandblow/internal/console"
	"github.com/robalobadob/hitandblow/internal/game"
	"github.com/robalobadob/hitandblow/internal/i18n"
	"github.com/robalobadob/hitandblow/internal/random"
	"github.com/robalobadob/hitandblow/internal/session"
	"github.com/robalobadob/hitandblow/internal/store"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load message catalogs")
	}
	if !bundle.HasLocale(cfg.Locale) {
		log.Warn().Str("locale", cfg.Locale).Str("fallback", i18n.BaseLocale).Msg("unknown locale")
	}

	seed, err := cfg.ResolveSeed(time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed digit source")
	}

	ctx := context.Background()
	history, err := store.Open(ctx, cfg.History)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.History).Msg("failed to open round history")
	}
	log.Debug().Str("backend", cfg.History).Msg("round history ready")

	ctrl := session.New(
		console.New(os.Stdin, os.Stdout),
		game.NewRound(random.NewSource(seed)),
		history,
		bundle.Printer(cfg.Locale),
	)
	runErr := ctrl.Run(ctx)
	if err := history.Close(); err != nil {
		log.Warn().Err(err).Msg("close round history")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("session aborted")
	}
	os.Exit(0)
}
