package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotienda/internal/domain"
)

func TestParsePeriod(t *testing.T) {
	p, err := domain.ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodMonth, p)

	p, err = domain.ParsePeriod("week")
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodWeek, p)

	_, err = domain.ParsePeriod("year")
	assert.Error(t, err)
}

func TestPeriod_Start(t *testing.T) {
	now := time.Date(2026, time.March, 18, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC), domain.PeriodDay.Start(now))
	assert.Equal(t, time.Date(2026, time.March, 11, 15, 30, 0, 0, time.UTC), domain.PeriodWeek.Start(now))
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), domain.PeriodMonth.Start(now))
}
