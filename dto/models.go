package dto

import "fmt"

// Wildcard labels used in catalog records.
const (
	StreamWildcard = "All"
	StateWildcard  = "All States"
)

// ScholarshipRecord is one catalog entry. Records are loaded once at startup
// and never mutated afterwards, so they are safe for concurrent reads.
type ScholarshipRecord struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	NameHindi        string   `json:"name_hi,omitempty"`
	MinPercentage    float64  `json:"min_percentage"`
	MaxIncome        int      `json:"max_income"`
	Categories       []string `json:"category"`
	Amount           int      `json:"amount"`
	Deadline         string   `json:"deadline"`
	Description      string   `json:"description,omitempty"`
	DescriptionHindi string   `json:"description_hi,omitempty"`
	ApplyURL         string   `json:"apply_url,omitempty"`
	Eligibility      []string `json:"eligibility,omitempty"`
	Documents        []string `json:"documents,omitempty"`
	EligibleStreams  []string `json:"eligible_streams"`
	States           []string `json:"states"`
}

// Validate reports a contract violation for records missing mandatory fields.
// Catalog loading fails fast on the first invalid record.
func (r *ScholarshipRecord) Validate() error {
	switch {
	case r.ID <= 0:
		return fmt.Errorf("scholarship record has invalid id %d", r.ID)
	case r.Name == "":
		return fmt.Errorf("scholarship record %d has no name", r.ID)
	case r.MinPercentage < 0 || r.MinPercentage > 100:
		return fmt.Errorf("scholarship record %d: min_percentage %.1f out of range", r.ID, r.MinPercentage)
	case r.MaxIncome < 0:
		return fmt.Errorf("scholarship record %d: negative max_income", r.ID)
	case len(r.Categories) == 0:
		return fmt.Errorf("scholarship record %d has no categories", r.ID)
	case r.Amount < 0:
		return fmt.Errorf("scholarship record %d: negative amount", r.ID)
	}
	return nil
}

// HasCategory tests category membership.
func (r *ScholarshipRecord) HasCategory(category string) bool {
	return contains(r.Categories, category)
}

// OpenToAllStreams reports whether the record carries the stream wildcard.
func (r *ScholarshipRecord) OpenToAllStreams() bool {
	return contains(r.EligibleStreams, StreamWildcard)
}

// OpenToAllStates reports whether the record carries the state wildcard.
func (r *ScholarshipRecord) OpenToAllStates() bool {
	return contains(r.States, StateWildcard)
}

// AllowsStream tests stream membership, wildcard included.
func (r *ScholarshipRecord) AllowsStream(stream string) bool {
	return r.OpenToAllStreams() || contains(r.EligibleStreams, stream)
}

// AllowsState tests state membership, wildcard included.
func (r *ScholarshipRecord) AllowsState(state string) bool {
	return r.OpenToAllStates() || contains(r.States, state)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ExamEligibility carries descriptive exam criteria. It is pass-through data,
// never used by the matcher.
type ExamEligibility struct {
	MinPercentage float64 `json:"min_percentage"`
	Subjects      string  `json:"subjects"`
}

// ExamRecord is one entrance-exam catalog entry.
type ExamRecord struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	FullName       string          `json:"full_name"`
	ConductingBody string          `json:"conducting_body"`
	ExamDate       string          `json:"exam_date"`
	Eligibility    ExamEligibility `json:"eligibility"`
	ApplicationURL string          `json:"application_url"`
}

// StudentProfile is the candidate profile a match runs against. Every field is
// independently optional; a nil field means "skip that criterion", never a
// failing one.
type StudentProfile struct {
	Name       *string  `json:"name"`
	Percentage *float64 `json:"percentage"`
	Income     *int     `json:"income"`
	Category   *string  `json:"category"`
	Stream     *string  `json:"stream"`
	State      *string  `json:"state"`
}

// IsEmpty reports whether no matching criterion is set.
func (p *StudentProfile) IsEmpty() bool {
	return p.Percentage == nil && p.Income == nil && p.Category == nil &&
		p.Stream == nil && p.State == nil
}
