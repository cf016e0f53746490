package service

import (
	"math"
	"time"

	"github.com/edufund/scholarship-finder/dto"
)

// deadlineLayout is the only accepted deadline form. Anything else is a
// "no fixed deadline" sentinel and classifies as unknown.
const deadlineLayout = "02-01-2006"

// Status labels attached to match results.
const (
	StatusDeadlinePassed = "Deadline Passed"
	StatusApplyNow       = "Apply Now!"
	StatusClosingSoon    = "Closing Soon"
	StatusOpen           = "Open"
	StatusCheckWebsite   = "Check Website"
)

// Policy carries the tunable constants of the matcher: the inclusion ratio
// and the urgency day boundaries. They are configuration, not invariants.
type Policy struct {
	MinMatchRatio float64
	CriticalDays  int
	HighDays      int
	MediumDays    int
}

// DefaultPolicy returns the reference policy: 60% inclusion threshold and
// 7/30/90 day urgency boundaries.
func DefaultPolicy() Policy {
	return Policy{
		MinMatchRatio: 0.6,
		CriticalDays:  7,
		HighDays:      30,
		MediumDays:    90,
	}
}

// ClassifyDeadline parses a DD-MM-YYYY deadline against a caller-supplied
// "now" and buckets it into an urgency tier. A deadline that does not parse
// yields DaysLeft nil and UrgencyUnknown; it is never an error.
func (p Policy) ClassifyDeadline(deadline string, now time.Time) dto.DeadlineInfo {
	deadlineDate, err := time.Parse(deadlineLayout, deadline)
	if err != nil {
		return dto.DeadlineInfo{
			DaysLeft: nil,
			Urgency:  dto.UrgencyUnknown,
			Status:   StatusCheckWebsite,
		}
	}

	// Floor day difference, so a deadline later today counts as 0 days left
	// and yesterday as -1.
	daysLeft := int(math.Floor(deadlineDate.Sub(now).Hours() / 24))

	info := dto.DeadlineInfo{DaysLeft: &daysLeft}
	switch {
	case daysLeft < 0:
		info.Urgency = dto.UrgencyExpired
		info.Status = StatusDeadlinePassed
	case daysLeft < p.CriticalDays:
		info.Urgency = dto.UrgencyCritical
		info.Status = StatusApplyNow
	case daysLeft < p.HighDays:
		info.Urgency = dto.UrgencyHigh
		info.Status = StatusClosingSoon
	case daysLeft < p.MediumDays:
		info.Urgency = dto.UrgencyMedium
		info.Status = StatusOpen
	default:
		info.Urgency = dto.UrgencyLow
		info.Status = StatusOpen
	}
	return info
}
