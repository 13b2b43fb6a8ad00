package repository

import (
	"context"
	"errors"
	"strings"

	"turfbook/internal/infra"
	"turfbook/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	const q = `
		SELECT id, code, amount_off_paise, percent_off, valid_from, valid_to
		FROM coupons
		WHERE code = $1`

	var snap commands.CouponSnapshot
	err := r.db.QueryRow(ctx, q, strings.ToUpper(strings.TrimSpace(code))).Scan(
		&snap.ID,
		&snap.Code,
		&snap.AmountOffPaise,
		&snap.PercentOff,
		&snap.ValidFrom,
		&snap.ValidTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	return &snap, nil
}
