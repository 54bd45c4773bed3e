package view

import (
	"context"
	"io"
	"time"
	"worldcup-scoreboard/internal/constants"
	"worldcup-scoreboard/internal/domain"

	"github.com/a-h/templ"
)

type PageOptions struct {
	Title    string
	Location *time.Location
}

// Page renders the full scoreboard document: today's match cards, the points
// table and the winners panel.
func Page(sb *domain.Scoreboard, opts PageOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		today := sb.Generated
		if opts.Location != nil {
			today = today.In(opts.Location)
		}

		h := newHTMLWriter(ctx, w)
		h.raw("<!DOCTYPE html>")
		h.raw(`<html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", "", opts.Title)
		h.raw(`<meta name="description" content="World Cup scoreboard">`)
		h.raw(`<link rel="icon" href="/assets/logo.svg">`)
		h.raw(`<link rel="stylesheet" href="/assets/styles.css">`)
		h.raw("</head><body>")

		h.open("main", []string{"scoreboard"}, attr("data-snapshot", sb.ID))
		h.open("section", []string{"scoreboard__main"})
		h.element("h1", "scoreboard__title", opts.Title)

		h.open("div", []string{"fixtures"})
		h.element("p", "fixtures__date", today.Format(constants.DateHeaderLayout))
		h.open("div", []string{"fixtures__grid"})
		for i, m := range sb.Fixtures {
			h.component(MatchCard(m, i, opts.Location))
		}
		h.close("div")
		h.close("div")

		h.component(PointsTable(sb.Players))
		h.close("section")

		h.component(WinnersPanel(sb.Winners, sb.Players))
		h.close("main")
		h.raw("</body></html>")
		return h.err
	})
}

func PointsTable(players []domain.Player) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", []string{"points-table"})
		h.element("p", "section-heading", "Points Table")
		h.open("div", []string{"points-table__grid"})
		for _, p := range domain.PointsTable(players) {
			h.component(PlayerCard(p))
		}
		h.close("div")
		h.close("div")
		return h.err
	})
}

func WinnersPanel(winners []domain.Winner, players []domain.Player) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("aside", []string{"winners"})
		h.element("p", "winners__heading", "Winners")
		h.open("div", []string{"winners__frame"})
		h.close("div")
		h.open("div", []string{"winners__list"})
		for _, p := range domain.WinnersPanel(winners, players) {
			h.component(PlayerCard(p))
		}
		h.close("div")
		h.close("aside")
		return h.err
	})
}
