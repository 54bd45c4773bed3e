package domain

import (
	"time"
)

type Player struct {
	ID    int64
	Name  string
	Score float64
}

type Team struct {
	Name    string
	Country string
	Goals   *int // nil until the match has started
	FlagURL string
}

type Match struct {
	ID      int64
	Kickoff time.Time
	Home    Team
	Away    Team
}

type Winner struct {
	Position    int
	Name        string
	Recognition string
}

// RankedPlayer is a Player placed on the page. ShowRank selects between the
// bare rank and the "round N" label.
type RankedPlayer struct {
	Player
	Rank     int
	ShowRank bool
}

type Scoreboard struct {
	ID        string
	Generated time.Time
	Players   []Player
	Fixtures  []Match
	Winners   []Winner
}
