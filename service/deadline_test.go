package service

import (
	"testing"
	"time"

	"github.com/edufund/scholarship-finder/dto"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDeadlineTiers(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	info := policy.ClassifyDeadline("07-10-2025", now)
	assert.Equal(t, 6, *info.DaysLeft)
	assert.Equal(t, dto.UrgencyCritical, info.Urgency)
	assert.Equal(t, StatusApplyNow, info.Status)

	info = policy.ClassifyDeadline("25-10-2025", now)
	assert.Equal(t, 24, *info.DaysLeft)
	assert.Equal(t, dto.UrgencyHigh, info.Urgency)
	assert.Equal(t, StatusClosingSoon, info.Status)

	info = policy.ClassifyDeadline("15-12-2025", now)
	assert.Equal(t, 75, *info.DaysLeft)
	assert.Equal(t, dto.UrgencyMedium, info.Urgency)
	assert.Equal(t, StatusOpen, info.Status)

	info = policy.ClassifyDeadline("30-06-2026", now)
	assert.Equal(t, dto.UrgencyLow, info.Urgency)
	assert.Equal(t, StatusOpen, info.Status)
}

func TestClassifyDeadlineSameDay(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	info := policy.ClassifyDeadline("01-10-2025", now)

	assert.Equal(t, 0, *info.DaysLeft)
	assert.Equal(t, dto.UrgencyCritical, info.Urgency)
}

func TestClassifyDeadlinePassed(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	info := policy.ClassifyDeadline("30-09-2025", now)

	assert.Equal(t, -1, *info.DaysLeft)
	assert.Equal(t, dto.UrgencyExpired, info.Urgency)
	assert.Equal(t, StatusDeadlinePassed, info.Status)
}

func TestClassifyDeadlineUnparseable(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	for _, deadline := range []string{"Varies", "", "2025-10-07", "31/10/2025"} {
		info := policy.ClassifyDeadline(deadline, now)
		assert.Nil(t, info.DaysLeft)
		assert.Equal(t, dto.UrgencyUnknown, info.Urgency)
		assert.Equal(t, StatusCheckWebsite, info.Status)
	}
}

func TestClassifyDeadlineCustomBoundaries(t *testing.T) {
	policy := Policy{MinMatchRatio: 0.6, CriticalDays: 3, HighDays: 10, MediumDays: 30}
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	info := policy.ClassifyDeadline("07-10-2025", now)

	assert.Equal(t, dto.UrgencyHigh, info.Urgency)
}
