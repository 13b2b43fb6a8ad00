package repository

import (
	"context"
	"errors"

	"turfbook/internal/domain/schedule"
	"turfbook/internal/infra"
	"turfbook/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, rec commands.ReservationRecord) error {
	const q = `
		INSERT INTO reservations
			(id, turf_id, user_id, slot_date, start_hour, half_hours, method, slot_price_paise, paid_paise, status, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`

	_, err := r.db.Exec(ctx, q,
		rec.ID,
		rec.TurfID,
		rec.UserID,
		schedule.DateKey(rec.SlotDate),
		rec.StartHour,
		rec.HalfHours,
		rec.Method,
		rec.SlotPricePaise,
		rec.PaidPaise,
		rec.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}
