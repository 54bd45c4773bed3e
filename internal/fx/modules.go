package fx

import (
	"worldcup-scoreboard/internal/api"
	"worldcup-scoreboard/internal/config"
	"worldcup-scoreboard/internal/database"
	"worldcup-scoreboard/internal/logger"
	"worldcup-scoreboard/internal/repository"
	"worldcup-scoreboard/internal/server"
	"worldcup-scoreboard/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(fx.Annotate(repository.NewWinnerRepository, fx.As(new(service.WinnerSource)))),
	// api clients
	fx.Provide(fx.Annotate(api.NewScoreboardClient, fx.As(new(service.PlayerSource)))),
	fx.Provide(fx.Annotate(api.NewFixturesClient, fx.As(new(service.FixtureSource)))),
	fx.Provide(fx.Annotate(api.NewFlagClient, fx.As(new(service.FlagResolver)))),
	// svc
	fx.Provide(fx.Annotate(service.NewScoreboardService, fx.As(new(server.ScoreboardLoader)))),
	// server
	fx.Provide(server.NewScoreboardServer),
	fx.Provide(server.NewHandler),
)
