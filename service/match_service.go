package service

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/edufund/scholarship-finder/catalog"
	"github.com/edufund/scholarship-finder/dto"
)

// MatchService runs the eligibility filter over the scholarship catalog and
// ranks the survivors. It holds only read-only state and is safe for
// concurrent use.
type MatchService struct {
	catalog   *catalog.Catalog
	policy    Policy
	homeState string
	logger    *zap.Logger
}

func NewMatchService(cat *catalog.Catalog, policy Policy, homeState string, logger *zap.Logger) *MatchService {
	return &MatchService{
		catalog:   cat,
		policy:    policy,
		homeState: homeState,
		logger:    logger,
	}
}

// Match evaluates every catalog record against the profile. Records failing a
// supplied hard gate (percentage, income, category) or an explicit soft
// mismatch (stream, state) land in the rejected list with the reason; the
// rest are scored, classified by deadline and sorted.
//
// Sort order: match percentage desc, amount desc, days-until-deadline asc
// with unknown deadlines last. Ties keep catalog order.
func (s *MatchService) Match(profile dto.StudentProfile, now time.Time) ([]dto.MatchResult, []dto.Rejection) {
	matched := []dto.MatchResult{}
	rejected := []dto.Rejection{}

	for _, record := range s.catalog.Scholarships() {
		verdict := evaluate(&record, &profile)
		if verdict.rejectionReason != "" {
			rejected = append(rejected, dto.Rejection{
				ID:          record.ID,
				Scholarship: record.Name,
				Reason:      verdict.rejectionReason,
			})
			continue
		}

		if float64(verdict.score) < s.policy.MinMatchRatio*float64(verdict.maxScore) {
			continue
		}

		matchPercentage := 0.0
		if verdict.maxScore > 0 {
			matchPercentage = roundOne(float64(verdict.score) / float64(verdict.maxScore) * 100)
		}

		deadline := s.policy.ClassifyDeadline(record.Deadline, now)
		matched = append(matched, dto.MatchResult{
			ScholarshipRecord: record,
			EligibilityScore:  verdict.score,
			MaxScore:          verdict.maxScore,
			MatchPercentage:   matchPercentage,
			MatchReasons:      verdict.reasons,
			DaysUntilDeadline: deadline.DaysLeft,
			Urgency:           deadline.Urgency,
			Status:            deadline.Status,
		})
	}

	sortMatches(matched)

	if s.logger != nil {
		s.logger.Debug("match completed",
			zap.Int("matched", len(matched)),
			zap.Int("rejected", len(rejected)))
	}
	return matched, rejected
}

// verdict is the outcome of evaluating one record against one profile.
type verdict struct {
	score           int
	maxScore        int
	reasons         []string
	rejectionReason string
}

// evaluate runs the criteria in fixed order: percentage, income, category,
// stream, state, short-circuiting on the first failure. Absent profile
// fields are skipped, never failed. Hard-gate passes count toward score and
// maxScore; soft criteria (stream, state) contribute a reason string only.
func evaluate(record *dto.ScholarshipRecord, profile *dto.StudentProfile) verdict {
	v := verdict{reasons: []string{}}

	if profile.Percentage != nil {
		v.maxScore++
		if *profile.Percentage >= record.MinPercentage {
			v.score++
			v.reasons = append(v.reasons,
				fmt.Sprintf("Marks: %.1f%% (required: %.0f%%+)", *profile.Percentage, record.MinPercentage))
		} else {
			v.rejectionReason = fmt.Sprintf("Marks too low: %.1f%% < %.0f%% required",
				*profile.Percentage, record.MinPercentage)
			return v
		}
	}

	if profile.Income != nil {
		v.maxScore++
		if *profile.Income <= record.MaxIncome {
			v.score++
			v.reasons = append(v.reasons,
				fmt.Sprintf("Income: ₹%d (limit: ₹%d)", *profile.Income, record.MaxIncome))
		} else {
			v.rejectionReason = fmt.Sprintf("Income too high: ₹%d > ₹%d limit",
				*profile.Income, record.MaxIncome)
			return v
		}
	}

	if profile.Category != nil {
		v.maxScore++
		if record.HasCategory(*profile.Category) {
			v.score++
			v.reasons = append(v.reasons, fmt.Sprintf("Category: %s eligible", *profile.Category))
		} else {
			v.rejectionReason = fmt.Sprintf("Category mismatch: %s not eligible", *profile.Category)
			return v
		}
	}

	if !record.OpenToAllStreams() && profile.Stream != nil {
		if record.AllowsStream(*profile.Stream) {
			v.reasons = append(v.reasons, fmt.Sprintf("Stream: %s eligible", *profile.Stream))
		} else {
			v.rejectionReason = fmt.Sprintf("Stream not eligible: %s", *profile.Stream)
			return v
		}
	}

	if !record.OpenToAllStates() && profile.State != nil {
		if record.AllowsState(*profile.State) {
			v.reasons = append(v.reasons, fmt.Sprintf("State: %s eligible", *profile.State))
		} else {
			v.rejectionReason = fmt.Sprintf("State not eligible: %s", *profile.State)
			return v
		}
	}

	return v
}

func sortMatches(matched []dto.MatchResult) {
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := &matched[i], &matched[j]
		if a.MatchPercentage != b.MatchPercentage {
			return a.MatchPercentage > b.MatchPercentage
		}
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		// Closer known deadlines first; unknown deadlines after all known.
		switch {
		case a.DaysUntilDeadline == nil && b.DaysUntilDeadline == nil:
			return false
		case a.DaysUntilDeadline == nil:
			return false
		case b.DaysUntilDeadline == nil:
			return true
		default:
			return *a.DaysUntilDeadline < *b.DaysUntilDeadline
		}
	})
}

// Aggregate reduces a matched set to summary statistics. The regional split
// counts records explicitly listing the configured home state. An empty
// matched set yields the zero summary.
func (s *MatchService) Aggregate(matched []dto.MatchResult) dto.SummaryStats {
	stats := dto.SummaryStats{}
	if len(matched) == 0 {
		return stats
	}

	highest := &matched[0]
	for i := range matched {
		m := &matched[i]
		stats.TotalAmount += m.Amount
		if m.Amount > highest.Amount {
			highest = m
		}
		if m.Urgency == dto.UrgencyCritical || m.Urgency == dto.UrgencyHigh {
			stats.UrgentCount++
		}
		for _, st := range m.States {
			if st == s.homeState {
				stats.RegionalScholarships++
				break
			}
		}
	}

	stats.TotalScholarships = len(matched)
	stats.AvgAmount = stats.TotalAmount / len(matched)
	name := highest.Name
	stats.HighestScholarship = &name
	stats.HighestAmount = highest.Amount
	stats.NationalScholarships = stats.TotalScholarships - stats.RegionalScholarships
	return stats
}

func roundOne(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
