package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsTable_KeepsUpstreamOrder(t *testing.T) {
	players := []Player{
		{ID: 1, Name: "A", Score: 10},
		{ID: 2, Name: "B", Score: 20},
	}

	table := PointsTable(players)

	require.Len(t, table, 2)
	assert.Equal(t, "A", table[0].Name)
	assert.Equal(t, 1, table[0].Rank)
	assert.Equal(t, "B", table[1].Name)
	assert.Equal(t, 2, table[1].Rank)
	for _, row := range table {
		assert.True(t, row.ShowRank)
	}
}

func TestPointsTable_Empty(t *testing.T) {
	assert.Empty(t, PointsTable(nil))
}

func TestWinnersPanel(t *testing.T) {
	players := []Player{
		{ID: 1, Name: "A", Score: 10},
		{ID: 2, Name: "B", Score: 20},
		{ID: 3, Name: "A", Score: 99},
	}

	tests := []struct {
		name          string
		winners       []Winner
		expectedNames []string
		expectedRanks []int
	}{
		{
			name:          "single match",
			winners:       []Winner{{Position: 1, Name: "A"}},
			expectedNames: []string{"A"},
			expectedRanks: []int{1},
		},
		{
			name:          "unmatched winner renders nothing",
			winners:       []Winner{{Position: 1, Name: "Nobody"}},
			expectedNames: nil,
			expectedRanks: nil,
		},
		{
			name: "rank follows winner list position, gaps kept",
			winners: []Winner{
				{Position: 1, Name: "B"},
				{Position: 2, Name: "Nobody"},
				{Position: 3, Name: "A"},
			},
			expectedNames: []string{"B", "A"},
			expectedRanks: []int{1, 3},
		},
		{
			name:          "name match is case sensitive",
			winners:       []Winner{{Position: 1, Name: "a"}},
			expectedNames: nil,
			expectedRanks: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := WinnersPanel(tt.winners, players)

			var names []string
			var ranks []int
			for _, p := range panel {
				names = append(names, p.Name)
				ranks = append(ranks, p.Rank)
				assert.False(t, p.ShowRank)
			}
			assert.Equal(t, tt.expectedNames, names)
			assert.Equal(t, tt.expectedRanks, ranks)
		})
	}
}

func TestWinnersPanel_FirstPlayerWins(t *testing.T) {
	players := []Player{
		{ID: 1, Name: "A", Score: 10},
		{ID: 3, Name: "A", Score: 99},
	}

	panel := WinnersPanel([]Winner{{Position: 1, Name: "A"}}, players)

	require.Len(t, panel, 1)
	assert.Equal(t, int64(1), panel[0].ID)
	assert.Equal(t, float64(10), panel[0].Score)
}
