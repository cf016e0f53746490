// Package catalog loads the scholarship and exam tables at process start and
// serves read-only views of them. Records are validated once on load and never
// mutated afterwards, which makes the catalog safe for unsynchronized
// concurrent reads.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/edufund/scholarship-finder/dto"
)

//go:embed data/scholarships.json data/exams.json
var defaultData embed.FS

// Catalog holds the immutable record tables.
type Catalog struct {
	scholarships []dto.ScholarshipRecord
	exams        []dto.ExamRecord
}

// Load reads the catalog from the given JSON files. Empty paths fall back to
// the embedded defaults. Every scholarship record is validated; the first
// invalid record aborts the load.
func Load(scholarshipPath, examPath string) (*Catalog, error) {
	scholarshipBytes, err := readFileOrDefault(scholarshipPath, "data/scholarships.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read scholarship catalog: %w", err)
	}
	examBytes, err := readFileOrDefault(examPath, "data/exams.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read exam catalog: %w", err)
	}

	var scholarships []dto.ScholarshipRecord
	if err := json.Unmarshal(scholarshipBytes, &scholarships); err != nil {
		return nil, fmt.Errorf("failed to parse scholarship catalog: %w", err)
	}
	for i := range scholarships {
		if err := scholarships[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid scholarship catalog: %w", err)
		}
	}

	var exams []dto.ExamRecord
	if err := json.Unmarshal(examBytes, &exams); err != nil {
		return nil, fmt.Errorf("failed to parse exam catalog: %w", err)
	}

	return &Catalog{scholarships: scholarships, exams: exams}, nil
}

// New builds a catalog from already-loaded records, validating them. Used by
// tests to substitute small fixtures for the shipped data.
func New(scholarships []dto.ScholarshipRecord, exams []dto.ExamRecord) (*Catalog, error) {
	for i := range scholarships {
		if err := scholarships[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &Catalog{scholarships: scholarships, exams: exams}, nil
}

func readFileOrDefault(path, embedded string) ([]byte, error) {
	if path == "" {
		return defaultData.ReadFile(embedded)
	}
	return os.ReadFile(path)
}

// Scholarships returns the full scholarship table in catalog order.
func (c *Catalog) Scholarships() []dto.ScholarshipRecord {
	return c.scholarships
}

// Exams returns the exam table.
func (c *Catalog) Exams() []dto.ExamRecord {
	return c.exams
}

// Len returns the number of scholarship records.
func (c *Catalog) Len() int {
	return len(c.scholarships)
}

// Filter is the optional query surface of GET /scholarships.
type Filter struct {
	State     string
	Category  string
	MinAmount int
}

// Filtered returns the scholarships passing every set filter field, in catalog
// order. Records carrying the "All States" wildcard match any state query.
func (c *Catalog) Filtered(f Filter) []dto.ScholarshipRecord {
	out := make([]dto.ScholarshipRecord, 0, len(c.scholarships))
	for _, s := range c.scholarships {
		if f.State != "" && !s.AllowsState(f.State) {
			continue
		}
		if f.Category != "" && !s.HasCategory(f.Category) {
			continue
		}
		if f.MinAmount > 0 && s.Amount < f.MinAmount {
			continue
		}
		out = append(out, s)
	}
	return out
}

// CountByState returns how many scholarships list the given state explicitly
// (wildcard records are not counted). Used by the assistant templates.
func (c *Catalog) CountByState(state string) int {
	n := 0
	for _, s := range c.scholarships {
		for _, st := range s.States {
			if st == state {
				n++
				break
			}
		}
	}
	return n
}

// CountByCategory returns how many scholarships accept the given category.
func (c *Catalog) CountByCategory(category string) int {
	n := 0
	for _, s := range c.scholarships {
		if s.HasCategory(category) {
			n++
		}
	}
	return n
}
