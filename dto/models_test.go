package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScholarshipRecordValidate(t *testing.T) {
	record := ScholarshipRecord{
		ID: 1, Name: "Merit Scheme", MinPercentage: 60, MaxIncome: 250000,
		Categories: []string{"General"}, Amount: 10000,
	}
	assert.NoError(t, record.Validate())

	bad := record
	bad.ID = 0
	assert.Error(t, bad.Validate())

	bad = record
	bad.MinPercentage = 120
	assert.Error(t, bad.Validate())

	bad = record
	bad.Categories = nil
	assert.Error(t, bad.Validate())
}

func TestScholarshipRecordWildcards(t *testing.T) {
	record := ScholarshipRecord{
		EligibleStreams: []string{StreamWildcard},
		States:          []string{"West Bengal", "Assam"},
	}

	assert.True(t, record.AllowsStream("Commerce"))
	assert.True(t, record.AllowsState("Assam"))
	assert.False(t, record.AllowsState("Kerala"))
	assert.False(t, record.OpenToAllStates())
}

func TestStudentProfileIsEmpty(t *testing.T) {
	profile := StudentProfile{}
	assert.True(t, profile.IsEmpty())

	income := 300000
	profile.Income = &income
	assert.False(t, profile.IsEmpty())

	// A name alone gives the matcher nothing to check.
	name := "Priya"
	assert.True(t, (&StudentProfile{Name: &name}).IsEmpty())
}
