package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"worldcup-scoreboard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFixturesClient_GetFixtures(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 5, "datetime": "2022-11-21T13:00:00Z",
			 "home_team": {"name": "England", "country": "ENG", "goals": 6},
			 "away_team": {"name": "Iran", "country": "IRN", "goals": 2}},
			{"id": 6, "datetime": "2022-11-21T16:00Z",
			 "home_team": {"name": "Senegal", "country": "SEN", "goals": null},
			 "away_team": {"name": "Netherlands", "country": "NED"}}
		]`))
	})

	client := NewFixturesClient(&config.Config{FixturesURL: srv.URL})
	matches, err := client.GetFixtures(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 2)

	first := matches[0]
	assert.Equal(t, int64(5), first.ID)
	assert.True(t, time.Date(2022, 11, 21, 13, 0, 0, 0, time.UTC).Equal(first.Kickoff))
	assert.Equal(t, "England", first.Home.Name)
	assert.Equal(t, "ENG", first.Home.Country)
	require.NotNil(t, first.Home.Goals)
	assert.Equal(t, 6, *first.Home.Goals)
	require.NotNil(t, first.Away.Goals)
	assert.Equal(t, 2, *first.Away.Goals)

	second := matches[1]
	assert.Nil(t, second.Home.Goals)
	assert.Nil(t, second.Away.Goals)
	assert.Equal(t, 16, second.Kickoff.Hour())
}

func TestScoreboardClient_GetPlayers(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"board": {"title": "Bloopers"}, "players": [
			{"id": 1, "name": "A", "score": 10},
			{"id": 2, "name": "B", "score": 20.5}
		]}`))
	})

	client := NewScoreboardClient(&config.Config{ScoreboardURL: srv.URL})
	players, err := client.GetPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, int64(1), players[0].ID)
	assert.Equal(t, "A", players[0].Name)
	assert.Equal(t, float64(10), players[0].Score)
	assert.Equal(t, 20.5, players[1].Score)
}

func TestDoRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "non 200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "board not found", http.StatusNotFound)
			},
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusNotFound, apiErr.Status)
				assert.Equal(t, "board not found", apiErr.Body)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"players": [`))
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrMalformedResponse))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, tt.handler)

			client := NewScoreboardClient(&config.Config{ScoreboardURL: srv.URL})
			players, err := client.GetPlayers(context.Background())

			assert.Nil(t, players)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestDoRequest_CancelledContext(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewFixturesClient(&config.Config{FixturesURL: srv.URL})
	_, err := client.GetFixtures(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixturesClient_FollowsRedirect(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/today":
			http.Redirect(w, r, "/today/", http.StatusMovedPermanently)
		case "/today/":
			w.Write([]byte(`[{"id": 9, "datetime": "2022-11-22T10:00:00Z",
				"home_team": {"name": "Argentina", "country": "ARG", "goals": 1},
				"away_team": {"name": "Saudi Arabia", "country": "KSA", "goals": 2}}]`))
		default:
			http.NotFound(w, r)
		}
	})

	client := NewFixturesClient(&config.Config{FixturesURL: srv.URL + "/today"})
	matches, err := client.GetFixtures(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(9), matches[0].ID)
	assert.Equal(t, "KSA", matches[0].Away.Country)
}

func TestDoRequest_RedirectLoop(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.Path, http.StatusFound)
	})

	client := NewScoreboardClient(&config.Config{ScoreboardURL: srv.URL + "/board"})
	players, err := client.GetPlayers(context.Background())

	assert.Nil(t, players)
	assert.Error(t, err)
}
