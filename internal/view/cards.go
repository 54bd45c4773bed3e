package view

import (
	"context"
	"io"
	"strconv"
	"time"
	"worldcup-scoreboard/internal/constants"
	"worldcup-scoreboard/internal/domain"

	"github.com/a-h/templ"
)

const (
	goalsPlaceholder   = "-"
	kickoffPlaceholder = "-"
)

// ScoreLine formats "home : away", with a dash for a missing goal count.
func ScoreLine(home, away *int) string {
	return goals(home) + " : " + goals(away)
}

func goals(g *int) string {
	if g == nil {
		return goalsPlaceholder
	}
	return strconv.Itoa(*g)
}

// RankLabel is the bare rank in the points table and "round N" in the
// winners panel. Rank 0 has no label.
func RankLabel(rank int, showRank bool) string {
	if rank <= 0 {
		return ""
	}
	if showRank {
		return strconv.Itoa(rank)
	}
	return "round " + strconv.Itoa(rank)
}

func PointsLabel(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + " Points"
}

// KickoffTime is the local wall-clock kickoff, or a dash when the fixture has
// no datetime yet.
func KickoffTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return kickoffPlaceholder
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(constants.KickoffLayout)
}

func MatchCard(m domain.Match, index int, loc *time.Location) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var side, spacing string
		if index%2 != 0 {
			side = "match-card--right"
		}
		if index > 1 {
			spacing = "match-card--spaced"
		}

		h := newHTMLWriter(ctx, w)
		h.open("div", []string{"match-card", side, spacing}, attr("data-match-id", strconv.FormatInt(m.ID, 10)))
		h.element("p", "match-card__time", KickoffTime(m.Kickoff, loc))
		h.component(TeamCard(m.Home, false))
		h.element("p", "match-card__score", ScoreLine(m.Home.Goals, m.Away.Goals))
		h.component(TeamCard(m.Away, true))
		h.close("div")
		return h.err
	})
}

func TeamCard(t domain.Team, away bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var direction string
		if away {
			direction = "team-card--away"
		}

		h := newHTMLWriter(ctx, w)
		h.open("div", []string{"team-card", direction})
		h.open("div", []string{"team-card__flag"})
		h.open("img", []string{"team-card__img"}, attr("alt", t.Name), urlAttr("src", t.FlagURL))
		h.close("div")
		h.element("p", "team-card__country", t.Country)
		h.close("div")
		return h.err
	})
}

func PlayerCard(p domain.RankedPlayer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var border string
		if p.Rank > 2 && p.ShowRank {
			border = "player-card--bordered"
		}

		h := newHTMLWriter(ctx, w)
		h.open("div", []string{"player-card", border}, attr("data-player-id", strconv.FormatInt(p.ID, 10)))
		h.open("div", []string{"player-card__who"})
		if label := RankLabel(p.Rank, p.ShowRank); label != "" {
			h.element("p", "player-card__rank", label)
		}
		h.element("p", "player-card__name", p.Name)
		h.close("div")
		h.element("p", "player-card__points", PointsLabel(p.Score))
		h.close("div")
		return h.err
	})
}
