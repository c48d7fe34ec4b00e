package static

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-npa-dashboard/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end domain.Date) domain.DateRange {
	t.Helper()
	r, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestRobotDaily_FullWeek(t *testing.T) {
	src := NewSource(fixedNow)
	today := domain.NewDate(2026, 10, 17)

	records, err := src.RobotDaily(context.Background(), mustRange(t, today.AddDays(-7), today))
	require.NoError(t, err)
	require.Len(t, records, 7)

	assert.Equal(t, "2026-10-11", records[0].Date.String())
	assert.Equal(t, "2026-10-17", records[6].Date.String())
	assert.Equal(t, 156, records[0].TotalEmails)
	assert.Equal(t, 192, records[6].TotalEmails)
	assert.Equal(t, 45, records[6].InterdepProcessed)
}

func TestRobotDaily_RangeBoundsRows(t *testing.T) {
	src := NewSource(fixedNow)

	records, err := src.RobotDaily(context.Background(),
		mustRange(t, domain.NewDate(2026, 10, 13), domain.NewDate(2026, 10, 14)))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 143, records[0].TotalEmails)
	assert.Equal(t, 201, records[1].TotalEmails)
}

func TestRobotDaily_OutsideRange(t *testing.T) {
	src := NewSource(fixedNow)

	records, err := src.RobotDaily(context.Background(),
		mustRange(t, domain.NewDate(2025, 1, 1), domain.NewDate(2025, 1, 31)))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRobotDaily_FreshSlices(t *testing.T) {
	src := NewSource(fixedNow)
	rng := mustRange(t, domain.NewDate(2026, 10, 1), domain.NewDate(2026, 10, 31))

	first, err := src.RobotDaily(context.Background(), rng)
	require.NoError(t, err)
	first[0].TotalEmails = 0

	second, err := src.RobotDaily(context.Background(), rng)
	require.NoError(t, err)
	assert.Equal(t, 156, second[0].TotalEmails)
}

func TestRobotDaily_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(fixedNow).RobotDaily(ctx, domain.DateRange{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNpaDocuments(t *testing.T) {
	src := NewSource(nil)

	docs, err := src.NpaDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 5)

	assert.Equal(t, "НПА-001", docs[0].DocumentName)
	require.NotNil(t, docs[0].ImplementationRate)
	assert.Equal(t, 78.3, *docs[0].ImplementationRate)

	// Изменение одного вызова не влияет на следующий
	*docs[0].ImplementationRate = 1
	again, err := src.NpaDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 78.3, *again[0].ImplementationRate)
}
