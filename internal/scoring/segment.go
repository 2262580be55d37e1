package scoring

import (
	"strings"
	"unicode/utf8"
)

const minUnitRunes = 10

// Segment splits text into sentence-like units used as the comparison
// granularity for embedding. Spans are delimited by periods, trimmed, and
// kept when longer than ten runes. Texts yielding fewer than three units
// collapse to a single unit holding the original text, so there is always
// something to embed.
func Segment(text string) []string {
	spans := strings.Split(text, ".")

	units := make([]string, 0, len(spans))
	for _, span := range spans {
		span = strings.TrimSpace(span)
		if utf8.RuneCountInString(span) > minUnitRunes {
			units = append(units, span)
		}
	}

	if len(units) < 3 {
		return []string{text}
	}

	return units
}
