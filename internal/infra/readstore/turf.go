package readstore

import (
	"context"
	"errors"

	"turfbook/internal/infra"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TurfReadStore struct {
	db *pgxpool.Pool
}

func NewTurfReadStore(db *pgxpool.Pool) *TurfReadStore {
	return &TurfReadStore{db: db}
}

func (r *TurfReadStore) FindAll(ctx context.Context) ([]*queries.TurfView, error) {
	const q = `
		SELECT id, name, sport, area, hourly_rate_paise
		FROM turfs
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list turfs", err)
	}
	defer rows.Close()

	var views []*queries.TurfView
	for rows.Next() {
		var v queries.TurfView
		if err := rows.Scan(&v.ID, &v.Name, &v.Sport, &v.Area, &v.HourlyRatePaise); err != nil {
			return nil, infra.WrapRepoErr("failed to scan turf row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate turf rows", err)
	}

	return views, nil
}

func (r *TurfReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TurfView, error) {
	const q = `
		SELECT id, name, sport, area, hourly_rate_paise
		FROM turfs
		WHERE id = $1`

	var v queries.TurfView
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Sport, &v.Area, &v.HourlyRatePaise)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("turf not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find turf by ID", err)
	}

	return &v, nil
}
