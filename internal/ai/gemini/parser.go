package gemini

import (
	"sort"
	"strings"
)

// taggedSection describes one block of the model response. Blocks run from
// their header to the next recognized header or the end of the response.
type taggedSection struct {
	key          string
	header       string
	defaultValue string
}

const rawPreviewLimit = 500

var taggedSections = []taggedSection{
	{key: "skills_match", header: "Skills Match:", defaultValue: "Analysis completed"},
	{key: "missing_skills", header: "Missing Skills:", defaultValue: "See full analysis"},
	{key: "improvement_tips", header: "Improvement Tips:", defaultValue: ""},
	{key: "overall_score", header: "Overall Score:", defaultValue: "N/A"},
	{key: "strengths", header: "Strengths:", defaultValue: "Analysis completed"},
	{key: "weaknesses", header: "Weaknesses:", defaultValue: "See improvement tips"},
}

// extractTaggedSections parses free-form model output into the fixed
// section map. Missing or empty sections get their named defaults; the
// parser itself never fails.
func extractTaggedSections(raw string) map[string]string {
	type hit struct {
		section taggedSection
		header  int // index of the header
		body    int // index right after the header
	}

	hits := make([]hit, 0, len(taggedSections))
	for _, s := range taggedSections {
		idx := strings.Index(raw, s.header)
		if idx < 0 {
			continue
		}
		hits = append(hits, hit{section: s, header: idx, body: idx + len(s.header)})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].header < hits[j].header })

	result := make(map[string]string, len(taggedSections))
	for i, h := range hits {
		end := len(raw)
		if i+1 < len(hits) {
			end = hits[i+1].header
		}
		result[h.section.key] = strings.TrimSpace(raw[h.body:end])
	}

	for _, s := range taggedSections {
		if result[s.key] != "" {
			continue
		}
		if s.key == "improvement_tips" {
			// The tips section falls back to a preview of the raw response
			// rather than a canned message.
			result[s.key] = truncateRunes(raw, rawPreviewLimit)
			continue
		}
		result[s.key] = s.defaultValue
	}

	return result
}
