package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"worldcup-scoreboard/internal/config"
	"worldcup-scoreboard/internal/constants"
	fxmodules "worldcup-scoreboard/internal/fx"
	"worldcup-scoreboard/internal/logger"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	handler http.Handler,
	cfg *config.Config,
	db *sql.DB,
	log zerolog.Logger,
) {
	level := logger.ApplyLevel(cfg.LogLevel)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           handler,
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Str("level", level.String()).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}

			if err := db.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing winner store")
			}

			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
