package dto

// Urgency buckets a scholarship by how close its deadline is.
type Urgency string

const (
	UrgencyExpired  Urgency = "expired"
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
	UrgencyUnknown  Urgency = "unknown"
)

// DeadlineInfo is the classification of one deadline string against a fixed
// "now". DaysLeft is nil when the deadline did not parse; callers branch on
// that instead of an error.
type DeadlineInfo struct {
	DaysLeft *int    `json:"days_until_deadline"`
	Urgency  Urgency `json:"urgency"`
	Status   string  `json:"status"`
}

// MatchResult is a catalog record annotated with the eligibility verdict and
// deadline classification for one profile.
type MatchResult struct {
	ScholarshipRecord
	EligibilityScore  int      `json:"eligibility_score"`
	MaxScore          int      `json:"max_score"`
	MatchPercentage   float64  `json:"match_percentage"`
	MatchReasons      []string `json:"match_reasons"`
	DaysUntilDeadline *int     `json:"days_until_deadline"`
	Urgency           Urgency  `json:"urgency"`
	Status            string   `json:"status"`
}

// Rejection records why a record was dropped, for explainability.
type Rejection struct {
	ID          int    `json:"id"`
	Scholarship string `json:"scholarship"`
	Reason      string `json:"reason"`
}

// SummaryStats reduces a matched set to display metrics. All-zero when the
// matched set is empty.
type SummaryStats struct {
	TotalAmount          int     `json:"total_amount"`
	AvgAmount            int     `json:"avg_amount"`
	HighestScholarship   *string `json:"highest_scholarship"`
	HighestAmount        int     `json:"highest_amount"`
	UrgentCount          int     `json:"urgent_count"`
	TotalScholarships    int     `json:"total_scholarships"`
	RegionalScholarships int     `json:"regional_scholarships"`
	NationalScholarships int     `json:"national_scholarships"`
}
