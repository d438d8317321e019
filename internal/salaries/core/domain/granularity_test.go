package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salary-aggregation-service/internal/salaries/core/domain"
)

func TestParseGranularity(t *testing.T) {
	for _, s := range []string{"hour", "day", "month"} {
		g, err := domain.ParseGranularity(s)
		require.NoError(t, err)
		assert.Equal(t, domain.Granularity(s), g)
	}

	for _, s := range []string{"", "invalid_type", "Hour", "week", "minute"} {
		_, err := domain.ParseGranularity(s)
		assert.ErrorIs(t, err, domain.ErrInvalidGranularity, "input %q", s)
	}
}

func TestGranularity_FloorAndLabel(t *testing.T) {
	ts := time.Date(2021, 12, 31, 22, 56, 41, 500, time.UTC)

	tests := []struct {
		g         domain.Granularity
		wantStart time.Time
		wantLabel string
	}{
		{domain.Hour, time.Date(2021, 12, 31, 22, 0, 0, 0, time.UTC), "2021-12-31T22:00:00"},
		{domain.Day, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC), "2021-12-31T00:00:00"},
		{domain.Month, time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC), "2021-12-01T00:00:00"},
	}

	for _, tc := range tests {
		t.Run(string(tc.g), func(t *testing.T) {
			start, label, err := tc.g.FloorAndLabel(ts)
			require.NoError(t, err)
			assert.True(t, tc.wantStart.Equal(start), "start %s", start)
			assert.Equal(t, tc.wantLabel, label)
		})
	}
}

func TestGranularity_FloorKeepsWallClock(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	ts := time.Date(2022, 9, 1, 2, 30, 0, 0, loc)

	label, err := domain.Day.Label(ts)
	require.NoError(t, err)
	assert.Equal(t, "2022-09-01T00:00:00", label)
}

func TestGranularity_Unsupported(t *testing.T) {
	g := domain.Granularity("week")

	_, _, err := g.FloorAndLabel(time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidGranularity)

	_, err = g.Step(time.Now(), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidGranularity)
}

func TestGranularity_StepFixed(t *testing.T) {
	anchor := time.Date(2021, 12, 31, 23, 0, 0, 0, time.UTC)

	next, err := domain.Hour.Step(anchor, 1)
	require.NoError(t, err)
	assert.Equal(t, "2022-01-01T00:00:00", next.Format(domain.LabelLayout))

	next, err = domain.Day.Step(anchor, 2)
	require.NoError(t, err)
	assert.Equal(t, "2022-01-02T23:00:00", next.Format(domain.LabelLayout))
}

func TestGranularity_StepMonthClampsToEndOfMonth(t *testing.T) {
	anchor := time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC)

	want := []string{
		"2022-01-31T00:00:00",
		"2022-02-28T00:00:00",
		"2022-03-31T00:00:00",
		"2022-04-30T00:00:00",
	}
	for i, w := range want {
		got, err := domain.Month.Step(anchor, i)
		require.NoError(t, err)
		assert.Equal(t, w, got.Format(domain.LabelLayout), "step %d", i)
	}

	leap, err := domain.Month.Step(time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29T12:00:00", leap.Format(domain.LabelLayout))

	rollover, err := domain.Month.Step(time.Date(2022, 11, 15, 0, 0, 0, 0, time.UTC), 3)
	require.NoError(t, err)
	assert.Equal(t, "2023-02-15T00:00:00", rollover.Format(domain.LabelLayout))
}
