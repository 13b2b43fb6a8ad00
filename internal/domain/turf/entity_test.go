//go:build unit

package turf_test

import (
	"strings"
	"testing"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/turf"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTurf(t *testing.T) {
	t.Run("trims the name", func(t *testing.T) {
		v, err := turf.NewTurf(uuid.New(), "  Greenfield Arena  ", "football", "Andheri West", booking.NewMoney(40000))
		require.NoError(t, err)
		assert.Equal(t, "Greenfield Arena", v.Name())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := turf.NewTurf(uuid.New(), "   ", "football", "Andheri West", booking.NewMoney(40000))
		assert.ErrorIs(t, err, turf.ErrEmptyTurfName)
	})

	t.Run("rejects an overlong name", func(t *testing.T) {
		_, err := turf.NewTurf(uuid.New(), strings.Repeat("a", 256), "football", "Andheri West", booking.NewMoney(40000))
		assert.ErrorIs(t, err, turf.ErrTurfNameTooLong)
	})
}

func TestRateOrDefault(t *testing.T) {
	fallback := booking.NewMoney(40000)

	t.Run("keeps a positive catalog rate", func(t *testing.T) {
		v, err := turf.NewTurf(uuid.New(), "Greenfield Arena", "football", "Andheri West", booking.NewMoney(55000))
		require.NoError(t, err)
		assert.Equal(t, int64(55000), v.RateOrDefault(fallback).Paise())
	})

	t.Run("substitutes the fallback for an unpriced turf", func(t *testing.T) {
		v, err := turf.NewTurf(uuid.New(), "Greenfield Arena", "football", "Andheri West", booking.NewMoney(0))
		require.NoError(t, err)
		assert.Equal(t, int64(40000), v.RateOrDefault(fallback).Paise())
	})
}
