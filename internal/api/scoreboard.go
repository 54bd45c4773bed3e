package api

import (
	"context"
	"worldcup-scoreboard/internal/config"
	"worldcup-scoreboard/internal/domain"

	"github.com/valyala/fasthttp"
)

// ScoreboardClient reads the player leaderboard from keepthescore.
type ScoreboardClient struct {
	url    string
	client *fasthttp.Client
}

func NewScoreboardClient(cfg *config.Config) *ScoreboardClient {
	return &ScoreboardClient{url: cfg.ScoreboardURL, client: newHTTPClient()}
}

func (c *ScoreboardClient) GetPlayers(ctx context.Context) ([]domain.Player, error) {
	resp, err := doRequest[BoardResponse](ctx, c.client, c.url)
	if err != nil {
		return nil, err
	}

	players := make([]domain.Player, 0, len(resp.Players))
	for _, p := range resp.Players {
		players = append(players, domain.Player{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	return players, nil
}

type BoardResponse struct {
	Players []PlayerDTO `json:"players"`
}

type PlayerDTO struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
