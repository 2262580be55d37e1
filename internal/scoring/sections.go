package scoring

import (
	"strings"
	"unicode/utf8"
)

const minSectionLineRunes = 5

// Sections groups resume lines under the common resume headings. Lines are
// assigned to the most recently seen heading; lines before any heading are
// dropped.
type Sections struct {
	Skills     []string
	Experience []string
	Education  []string
}

// ExtractSections scans resume text line by line and buckets content under
// the skills, experience and education headings based on keyword hints.
func ExtractSections(text string) Sections {
	var sections Sections
	var current *[]string

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		switch {
		case containsAny(lower, "skill", "technical", "programming"):
			current = &sections.Skills
		case containsAny(lower, "experience", "work", "employment", "career"):
			current = &sections.Experience
		case containsAny(lower, "education", "degree", "university", "college"):
			current = &sections.Education
		}

		trimmed := strings.TrimSpace(line)
		if current != nil && utf8.RuneCountInString(trimmed) > minSectionLineRunes {
			*current = append(*current, trimmed)
		}
	}

	return sections
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
