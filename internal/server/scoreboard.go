package server

import (
	"bytes"
	"context"
	"net/http"
	"time"
	"worldcup-scoreboard/internal/config"
	"worldcup-scoreboard/internal/domain"
	"worldcup-scoreboard/internal/middleware"
	"worldcup-scoreboard/internal/view"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const GetScoreboardProcedure = "/worldcup.v1.ScoreboardService/GetScoreboard"

type ScoreboardLoader interface {
	Load(ctx context.Context) (*domain.Scoreboard, error)
}

type ScoreboardServer struct {
	svc    ScoreboardLoader
	page   view.PageOptions
	logger zerolog.Logger
}

func NewScoreboardServer(svc ScoreboardLoader, cfg *config.Config, logger zerolog.Logger) *ScoreboardServer {
	return &ScoreboardServer{
		svc:    svc,
		page:   view.PageOptions{Title: cfg.PageTitle, Location: cfg.Location},
		logger: logger,
	}
}

// ServePage renders the scoreboard document. The page is rendered into a
// buffer first so a failed render never leaves a half-written 200.
func (s *ScoreboardServer) ServePage(w http.ResponseWriter, r *http.Request) {
	logger := s.loggerFor(r.Context())

	sb, err := s.svc.Load(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to load scoreboard")
		msg := "scoreboard is unavailable right now"
		if id := middleware.GetRequestID(r.Context()); id != "" {
			msg += " (request " + id + ")"
		}
		http.Error(w, msg, http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := view.Page(sb, s.page).Render(r.Context(), &buf); err != nil {
		logger.Error().Err(err).Str("snapshot_id", sb.ID).Msg("failed to render scoreboard")
		http.Error(w, "failed to render scoreboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn().Err(err).Msg("failed to write scoreboard page")
	}
}

func (s *ScoreboardServer) GetScoreboard(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[structpb.Struct], error) {
	sb, err := s.svc.Load(ctx)
	if err != nil {
		logger := s.loggerFor(ctx)
		logger.Error().Err(err).Msg("failed to load scoreboard")
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	msg, err := structpb.NewStruct(snapshotFields(sb, s.page.Location))
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(msg), nil
}

func (s *ScoreboardServer) RPCHandler() (string, http.Handler) {
	return GetScoreboardProcedure, connect.NewUnaryHandler(GetScoreboardProcedure, s.GetScoreboard)
}

func (s *ScoreboardServer) loggerFor(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return s.logger
}

// snapshotFields mirrors what the page shows, in a shape structpb accepts.
func snapshotFields(sb *domain.Scoreboard, loc *time.Location) map[string]any {
	fixtures := make([]any, 0, len(sb.Fixtures))
	for _, m := range sb.Fixtures {
		var kickoff string
		if !m.Kickoff.IsZero() {
			kickoff = m.Kickoff.Format(time.RFC3339)
		}
		fixtures = append(fixtures, map[string]any{
			"id":      m.ID,
			"kickoff": kickoff,
			"time":    view.KickoffTime(m.Kickoff, loc),
			"score":   view.ScoreLine(m.Home.Goals, m.Away.Goals),
			"home":    teamFields(m.Home),
			"away":    teamFields(m.Away),
		})
	}

	return map[string]any{
		"id":            sb.ID,
		"generated":     sb.Generated.Format(time.RFC3339),
		"fixtures":      fixtures,
		"points_table":  rankedFields(domain.PointsTable(sb.Players)),
		"winners_panel": rankedFields(domain.WinnersPanel(sb.Winners, sb.Players)),
	}
}

func teamFields(t domain.Team) map[string]any {
	var goals any
	if t.Goals != nil {
		goals = *t.Goals
	}
	return map[string]any{
		"name":     t.Name,
		"country":  t.Country,
		"goals":    goals,
		"flag_url": t.FlagURL,
	}
}

func rankedFields(players []domain.RankedPlayer) []any {
	out := make([]any, 0, len(players))
	for _, p := range players {
		out = append(out, map[string]any{
			"id":     p.ID,
			"name":   p.Name,
			"score":  p.Score,
			"rank":   p.Rank,
			"label":  view.RankLabel(p.Rank, p.ShowRank),
			"points": view.PointsLabel(p.Score),
		})
	}
	return out
}
