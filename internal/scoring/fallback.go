package scoring

import (
	_ "embed"
	"strings"
)

//go:embed technical_skills.txt
var technicalSkillsData string

//go:embed soft_skills.txt
var softSkillsData string

const (
	fallbackFloor   = 15
	fallbackCeiling = 90

	// defaultFallbackScore is returned when the fallback itself fails.
	defaultFallbackScore = 50

	noTechnicalTermsScore = 60
	noSoftTermsScore      = 70

	technicalWeight = 0.7
	softWeight      = 0.3
)

var (
	technicalSkills = parseTerms(technicalSkillsData)
	softSkills      = parseTerms(softSkillsData)
)

func parseTerms(data string) []string {
	lines := strings.Split(data, "\n")

	terms := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		terms = append(terms, strings.ToLower(line))
	}

	return terms
}

// fallbackScore is the deterministic keyword scorer used whenever the
// embedding path fails. It always returns a value in [15, 90].
func fallbackScore(resumeText, jobDescription string) (score int) {
	defer func() {
		if recover() != nil {
			score = defaultFallbackScore
		}
	}()

	return keywordScore(resumeText, jobDescription, technicalSkills, softSkills)
}

// keywordScore matches dictionary terms as literal substrings, not on word
// boundaries. A term hiding inside an unrelated word counts as a hit; the
// imprecision is accepted so scores stay comparable across versions.
func keywordScore(resumeText, jobDescription string, technical, soft []string) int {
	resumeLower := strings.ToLower(resumeText)
	jdLower := strings.ToLower(jobDescription)

	jdTechnical := matchTerms(jdLower, technical)
	jdSoft := matchTerms(jdLower, soft)

	technicalScore := float64(noTechnicalTermsScore)
	if len(jdTechnical) > 0 {
		technicalScore = 100 * float64(len(matchTerms(resumeLower, jdTechnical))) / float64(len(jdTechnical))
	}

	softScore := float64(noSoftTermsScore)
	if len(jdSoft) > 0 {
		softScore = 100 * float64(len(matchTerms(resumeLower, jdSoft))) / float64(len(jdSoft))
	}

	weighted := technicalWeight*technicalScore + softWeight*softScore

	return clamp(int(weighted), fallbackFloor, fallbackCeiling)
}

func matchTerms(text string, terms []string) []string {
	matched := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(text, term) {
			matched = append(matched, term)
		}
	}

	return matched
}
