package availability

import (
	"context"
	"time"

	"turfbook/internal/domain/schedule"
	"turfbook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProvider answers availability from the reservations table, the
// system's reservation authority.
type PostgresProvider struct {
	db *pgxpool.Pool
}

func NewPostgresProvider(db *pgxpool.Pool) *PostgresProvider {
	return &PostgresProvider{db: db}
}

func (p *PostgresProvider) BookedHours(ctx context.Context, turfID uuid.UUID, date time.Time) (map[int]bool, error) {
	const q = `
		SELECT start_hour, half_hours
		FROM reservations
		WHERE turf_id = $1 AND slot_date = $2 AND status = 'confirmed'`

	rows, err := p.db.Query(ctx, q, turfID, schedule.DateKey(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked hours", err)
	}
	defer rows.Close()

	booked := make(map[int]bool)
	for rows.Next() {
		var startHour, halfHours int
		if err := rows.Scan(&startHour, &halfHours); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		// A trailing half hour still blocks the whole slot.
		span := (halfHours + 1) / 2
		for i := 0; i < span; i++ {
			booked[startHour+i] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return booked, nil
}
