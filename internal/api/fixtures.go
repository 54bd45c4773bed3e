package api

import (
	"context"
	"worldcup-scoreboard/internal/config"
	"worldcup-scoreboard/internal/domain"

	"github.com/valyala/fasthttp"
)

// FixturesClient reads today's matches from the worldcupjson fixtures API.
type FixturesClient struct {
	url    string
	client *fasthttp.Client
}

func NewFixturesClient(cfg *config.Config) *FixturesClient {
	return &FixturesClient{url: cfg.FixturesURL, client: newHTTPClient()}
}

func (c *FixturesClient) GetFixtures(ctx context.Context) ([]domain.Match, error) {
	resp, err := doRequest[[]FixtureDTO](ctx, c.client, c.url)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Match, 0, len(*resp))
	for _, f := range *resp {
		matches = append(matches, f.toDomain())
	}
	return matches, nil
}

type FixtureDTO struct {
	ID       int64    `json:"id"`
	Datetime FlexTime `json:"datetime"`
	HomeTeam TeamDTO  `json:"home_team"`
	AwayTeam TeamDTO  `json:"away_team"`
}

type TeamDTO struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Goals   *int   `json:"goals"`
}

func (f FixtureDTO) toDomain() domain.Match {
	return domain.Match{
		ID:      f.ID,
		Kickoff: f.Datetime.Time,
		Home:    f.HomeTeam.toDomain(),
		Away:    f.AwayTeam.toDomain(),
	}
}

func (t TeamDTO) toDomain() domain.Team {
	return domain.Team{Name: t.Name, Country: t.Country, Goals: t.Goals}
}
