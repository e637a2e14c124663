package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, 6, 15, 13, 45, 30, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestDateOnly_NormalizaFusoParaUTC(t *testing.T) {
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*3600)

	// 23h locais já são o dia seguinte em UTC
	ts := time.Date(2024, 6, 15, 23, 0, 0, 0, saoPaulo)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysBetween(from, to))
	assert.Equal(t, 0, DaysBetween(from, from))
}
