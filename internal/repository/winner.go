package repository

import (
	"context"
	"database/sql"
	"fmt"
	"worldcup-scoreboard/internal/domain"

	"github.com/rs/zerolog"
)

const listWinners = `SELECT position, name, recognition FROM winners ORDER BY position`

type WinnerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewWinnerRepository(sqlDB *sql.DB, logger zerolog.Logger) *WinnerRepository {
	return &WinnerRepository{db: sqlDB, logger: logger}
}

func (r *WinnerRepository) List(ctx context.Context) ([]domain.Winner, error) {
	rows, err := r.db.QueryContext(ctx, listWinners)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query winners")
		return nil, fmt.Errorf("failed to query winners: %w", err)
	}
	defer rows.Close()

	var winners []domain.Winner
	for rows.Next() {
		var w domain.Winner
		if err := rows.Scan(&w.Position, &w.Name, &w.Recognition); err != nil {
			return nil, fmt.Errorf("failed to scan winner: %w", err)
		}
		winners = append(winners, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate winners: %w", err)
	}

	r.logger.Debug().Int("count", len(winners)).Msg("winners loaded")
	return winners, nil
}
