package domain

// PointsTable ranks players by their position in the upstream list. The list
// is not re-sorted by score.
func PointsTable(players []Player) []RankedPlayer {
	table := make([]RankedPlayer, 0, len(players))
	for i, p := range players {
		table = append(table, RankedPlayer{Player: p, Rank: i + 1, ShowRank: true})
	}
	return table
}

// WinnersPanel pairs each winner with the first player carrying the exact same
// name. The rank is the winner's position in the list; winners without a
// matching player are skipped.
func WinnersPanel(winners []Winner, players []Player) []RankedPlayer {
	byName := make(map[string]Player, len(players))
	for _, p := range players {
		if _, seen := byName[p.Name]; !seen {
			byName[p.Name] = p
		}
	}

	var panel []RankedPlayer
	for i, w := range winners {
		p, ok := byName[w.Name]
		if !ok {
			continue
		}
		panel = append(panel, RankedPlayer{Player: p, Rank: i + 1, ShowRank: false})
	}
	return panel
}
