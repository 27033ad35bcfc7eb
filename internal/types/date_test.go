package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentMonthWindow(t *testing.T) {
	w := CurrentMonthWindow(time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), w.End)

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Second)))
}

func TestCurrentMonthWindowYearBoundary(t *testing.T) {
	w := CurrentMonthWindow(time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestReferencePeriodKey(t *testing.T) {
	assert.Equal(t, "03/2026", ReferencePeriodKey(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12/2026", ReferencePeriodKey(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)))

	// Local timestamps normalize to UTC before the key is derived.
	loc := time.FixedZone("UTC-3", -3*60*60)
	assert.Equal(t, "04/2026", ReferencePeriodKey(time.Date(2026, 3, 31, 23, 0, 0, 0, loc)))
}

func TestPeriodStatusIsFrozen(t *testing.T) {
	assert.False(t, PeriodStatusPending.IsFrozen())
	assert.True(t, PeriodStatusBilled.IsFrozen())
	assert.True(t, PeriodStatusPaid.IsFrozen())
	assert.False(t, PeriodStatusOverdue.IsFrozen())
}
