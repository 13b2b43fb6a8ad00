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

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewColumns = `
	r.id, r.turf_id, t.name, to_char(r.slot_date, 'YYYY-MM-DD'), r.start_hour,
	r.half_hours, r.method, r.slot_price_paise, r.paid_paise, r.status, r.created_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT ` + bookingViewColumns + `
		FROM reservations r
		JOIN turfs t ON t.id = r.turf_id
		WHERE r.id = $1`

	view, err := scanBookingView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	const q = `
		SELECT ` + bookingViewColumns + `
		FROM reservations r
		JOIN turfs t ON t.id = r.turf_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	var halfHours int
	err := row.Scan(
		&v.ID,
		&v.TurfID,
		&v.TurfName,
		&v.SlotDate,
		&v.StartHour,
		&halfHours,
		&v.Method,
		&v.SlotPricePaise,
		&v.PaidPaise,
		&v.Status,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.DurationHours = float64(halfHours) / 2.0
	return &v, nil
}
