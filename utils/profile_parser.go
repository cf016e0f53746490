package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/edufund/scholarship-finder/dto"
)

// cgpaScale converts a <=10 grade-point value to a percentage. Values on a
// ten-point scale are assumed to be CGPA; an exam with a native single-digit
// percentage is therefore misread as CGPA. Known limitation of the heuristic.
const cgpaScale = 9.5

// keywordRule maps one label to its recognition keywords. Rules are tested in
// slice order and the first label with any keyword present wins, so order is
// part of the contract.
type keywordRule struct {
	label    string
	keywords []string
}

var categoryRules = []keywordRule{
	{"SC", []string{"scheduled caste", "sc", "s.c.", "s.c"}},
	{"ST", []string{"scheduled tribe", "st", "s.t.", "s.t"}},
	{"OBC", []string{"other backward", "obc", "o.b.c"}},
	{"General", []string{"general", "gen"}},
	{"Minority", []string{"minority", "muslim", "christian", "sikh", "buddhist", "jain"}},
}

var streamRules = []keywordRule{
	{"Science", []string{"science", "pcm", "pcb", "physics", "chemistry"}},
	{"Commerce", []string{"commerce", "accountancy", "business"}},
	{"Arts", []string{"arts", "humanities", "history", "geography"}},
	{"Engineering", []string{"engineering", "b.tech", "btech"}},
	{"Medical", []string{"medical", "mbbs", "medicine"}},
}

var stateKeywords = []string{"west bengal", "wb", "kolkata", "bengal"}

// ParseStudentProfile extracts a partial student profile from raw OCR text.
// Extraction is purely additive: fields with no matching pattern stay nil,
// and malformed input never produces an error.
func ParseStudentProfile(ocrText string) dto.StudentProfile {
	textLower := strings.ToLower(ocrText)

	return dto.StudentProfile{
		Name:       extractName(ocrText),
		Percentage: extractPercentage(ocrText),
		Income:     extractIncome(ocrText),
		Category:   matchKeywordRules(textLower, categoryRules),
		Stream:     matchKeywordRules(textLower, streamRules),
		State:      extractState(textLower),
	}
}

// extractName tries label-anchored patterns in priority order.
func extractName(text string) *string {
	patterns := []string{
		`(?i)name[:\s]+([A-Za-z\s]+?)(?:\n|percentage|marks)`,
		`(?i)student[:\s]+([A-Za-z\s]+?)\n`,
		`(?i)naam[:\s]+([A-Za-z\s]+?)\n`,
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		if matches := re.FindStringSubmatch(text); len(matches) > 1 {
			name := strings.TrimSpace(matches[1])
			if name != "" {
				return &name
			}
		}
	}

	return nil
}

// extractPercentage tries a bare percent value first, then labeled numbers.
// A parsed value of 10 or less is treated as CGPA and scaled to a percentage.
func extractPercentage(text string) *float64 {
	patterns := []string{
		`(\d+\.?\d*)\s*%`,
		`(?i)percentage[:\s]+(\d+\.?\d*)`,
		`(?i)marks[:\s]+(\d+\.?\d*)`,
		`(?i)cgpa[:\s]+(\d+\.?\d*)`,
		`(?i)grade[:\s]+(\d+\.?\d*)`,
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(text)
		if len(matches) < 2 {
			continue
		}
		value, err := strconv.ParseFloat(matches[1], 64)
		if err != nil {
			continue
		}
		if value <= 10 {
			value = roundTwo(value * cgpaScale)
		}
		return &value
	}

	return nil
}

// extractIncome tries labeled amounts, then a bare rupee amount, then a bare
// 5-7 digit number suffixed with "/-".
func extractIncome(text string) *int {
	patterns := []string{
		`(?i)income[:\s]+₹?\s*(\d+)`,
		`(?i)annual\s+income[:\s]+₹?\s*(\d+)`,
		`₹\s*(\d{5,7})`,
		`(\d{5,7})\s*/-`,
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(text)
		if len(matches) < 2 {
			continue
		}
		income, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		return &income
	}

	return nil
}

// matchKeywordRules returns the first label whose keyword set has any member
// present as a substring of the lower-cased text. Substring containment only,
// no word-boundary requirement.
func matchKeywordRules(textLower string, rules []keywordRule) *string {
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(textLower, keyword) {
				label := rule.label
				return &label
			}
		}
	}
	return nil
}

// extractState detects the single supported home region.
func extractState(textLower string) *string {
	for _, keyword := range stateKeywords {
		if strings.Contains(textLower, keyword) {
			state := "West Bengal"
			return &state
		}
	}
	return nil
}

func roundTwo(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
