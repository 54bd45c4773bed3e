package service

import (
	"context"
	"fmt"
	"time"
	"worldcup-scoreboard/internal/config"
	"worldcup-scoreboard/internal/constants"
	"worldcup-scoreboard/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type PlayerSource interface {
	GetPlayers(ctx context.Context) ([]domain.Player, error)
}

type FixtureSource interface {
	GetFixtures(ctx context.Context) ([]domain.Match, error)
}

type WinnerSource interface {
	List(ctx context.Context) ([]domain.Winner, error)
}

// FlagResolver returns the image source for a team's flag. A non-nil error
// may come with a usable fallback source.
type FlagResolver interface {
	ResolveFlag(ctx context.Context, name, country string) (string, error)
}

type ScoreboardService struct {
	players     PlayerSource
	fixtures    FixtureSource
	winners     WinnerSource
	flags       FlagResolver
	concurrency int
	location    *time.Location
	now         func() time.Time
	logger      zerolog.Logger
}

func NewScoreboardService(players PlayerSource, fixtures FixtureSource, winners WinnerSource, flags FlagResolver, cfg *config.Config, logger zerolog.Logger) *ScoreboardService {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	concurrency := cfg.FlagProbeConcurrency
	if concurrency < 1 {
		concurrency = constants.DefaultFlagProbeConcurrency
	}
	return &ScoreboardService{
		players:     players,
		fixtures:    fixtures,
		winners:     winners,
		flags:       flags,
		concurrency: concurrency,
		location:    loc,
		now:         time.Now,
		logger:      logger,
	}
}

// Load fetches the players and then the fixtures, reads the winner list and
// resolves every team flag. Upstream failures are returned as is, wrapped with
// the stage that failed.
func (s *ScoreboardService) Load(ctx context.Context) (*domain.Scoreboard, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	logger := s.loggerFor(ctx)
	start := s.now()

	players, err := s.fetchPlayers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch players")
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}

	fixtures, err := s.fetchFixtures(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch fixtures")
		return nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer dbCancel()

	winners, err := s.winners.List(dbCtx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load winners")
		return nil, fmt.Errorf("failed to load winners: %w", err)
	}

	s.resolveFlags(ctx, logger, fixtures)

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate snapshot id: %w", err)
	}

	logger.Info().
		Str("snapshot_id", id).
		Int("players", len(players)).
		Int("fixtures", len(fixtures)).
		Int("winners", len(winners)).
		Dur("took", s.now().Sub(start)).
		Msg("scoreboard loaded")

	return &domain.Scoreboard{
		ID:        id,
		Generated: s.now().In(s.location),
		Players:   players,
		Fixtures:  fixtures,
		Winners:   winners,
	}, nil
}

func (s *ScoreboardService) fetchPlayers(ctx context.Context) ([]domain.Player, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	return s.players.GetPlayers(apiCtx)
}

func (s *ScoreboardService) fetchFixtures(ctx context.Context) ([]domain.Match, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	return s.fixtures.GetFixtures(apiCtx)
}

// resolveFlags probes once per team. A failed probe never fails the render;
// the fallback source is kept and the error logged.
func (s *ScoreboardService) resolveFlags(ctx context.Context, logger zerolog.Logger, fixtures []domain.Match) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range fixtures {
		for _, team := range []*domain.Team{&fixtures[i].Home, &fixtures[i].Away} {
			team := team
			g.Go(func() error {
				probeCtx, cancel := context.WithTimeout(gctx, constants.FlagProbeTimeout)
				defer cancel()

				src, err := s.flags.ResolveFlag(probeCtx, team.Name, team.Country)
				if err != nil {
					logger.Warn().Err(err).Str("team", team.Name).Str("country", team.Country).Msg("flag probe failed")
				}
				team.FlagURL = src
				return nil
			})
		}
	}

	_ = g.Wait()
}

func (s *ScoreboardService) loggerFor(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return s.logger
}
