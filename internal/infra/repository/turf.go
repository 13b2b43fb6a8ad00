package repository

import (
	"context"
	"errors"

	"turfbook/internal/infra"
	"turfbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TurfRepository struct {
	db *pgxpool.Pool
}

func NewTurfRepository(db *pgxpool.Pool) *TurfRepository {
	return &TurfRepository{db: db}
}

func (r *TurfRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.TurfSnapshot, error) {
	const q = `
		SELECT id, name, sport, area, hourly_rate_paise
		FROM turfs
		WHERE id = $1`

	var snap commands.TurfSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Sport,
		&snap.Area,
		&snap.HourlyRatePaise,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("turf not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find turf by ID", err)
	}

	return &snap, nil
}
