package catalog

import (
	"testing"

	"github.com/edufund/scholarship-finder/dto"
	"github.com/stretchr/testify/assert"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cat, err := Load("", "")

	assert.NoError(t, err)
	assert.Equal(t, 22, cat.Len())
	assert.Equal(t, 3, len(cat.Exams()))
	assert.Equal(t, "Kanyashree Prakalpa (K1)", cat.Scholarships()[0].Name)
	assert.Equal(t, "JEE Main", cat.Exams()[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json", "")

	assert.Error(t, err)
}

func TestNewRejectsInvalidRecord(t *testing.T) {
	records := []dto.ScholarshipRecord{
		{ID: 1, Name: "", MinPercentage: 50, Categories: []string{"General"}},
	}

	_, err := New(records, nil)

	assert.Error(t, err)
}

func TestFiltered(t *testing.T) {
	cat, err := New([]dto.ScholarshipRecord{
		{
			ID: 1, Name: "State Scheme", MinPercentage: 0, MaxIncome: 100000,
			Categories: []string{"SC"}, Amount: 5000, States: []string{"West Bengal"},
		},
		{
			ID: 2, Name: "National Scheme", MinPercentage: 0, MaxIncome: 100000,
			Categories: []string{"SC", "OBC"}, Amount: 20000, States: []string{dto.StateWildcard},
		},
	}, nil)
	assert.NoError(t, err)

	// Wildcard records match any state query.
	byState := cat.Filtered(Filter{State: "West Bengal"})
	assert.Equal(t, 2, len(byState))

	byState = cat.Filtered(Filter{State: "Kerala"})
	assert.Equal(t, 1, len(byState))
	assert.Equal(t, "National Scheme", byState[0].Name)

	byCategory := cat.Filtered(Filter{Category: "OBC"})
	assert.Equal(t, 1, len(byCategory))

	byAmount := cat.Filtered(Filter{MinAmount: 10000})
	assert.Equal(t, 1, len(byAmount))
	assert.Equal(t, "National Scheme", byAmount[0].Name)

	all := cat.Filtered(Filter{})
	assert.Equal(t, 2, len(all))
}

func TestCounts(t *testing.T) {
	cat, err := Load("", "")
	assert.NoError(t, err)

	// Wildcard records are excluded from the per-state count.
	assert.Equal(t, 6, cat.CountByState("West Bengal"))
	assert.Equal(t, 13, cat.CountByCategory("OBC"))
	assert.Equal(t, 0, cat.CountByState("Kerala"))
}
