package scoring

// Severity classifies a feedback tier for presentation purposes.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Feedback is the qualitative band a match score falls into, together with
// the message and display colors used to present it.
type Feedback struct {
	Tier       string
	Message    string
	Severity   Severity
	Color      string
	Background string
}

// FeedbackFor maps a match score to its feedback tier. Band lower bounds
// are inclusive.
func FeedbackFor(score int) Feedback {
	switch {
	case score >= 80:
		return Feedback{
			Tier:       "Excellent",
			Message:    "Excellent match! Your resume aligns very well with this job.",
			Severity:   SeveritySuccess,
			Color:      "#28a745",
			Background: "#d4edda",
		}
	case score >= 65:
		return Feedback{
			Tier:       "Good",
			Message:    "Good match! Consider highlighting relevant skills more prominently.",
			Severity:   SeverityInfo,
			Color:      "#17a2b8",
			Background: "#d1ecf1",
		}
	case score >= 45:
		return Feedback{
			Tier:       "Moderate",
			Message:    "Moderate match. You may want to tailor your resume for this role.",
			Severity:   SeverityWarning,
			Color:      "#ffc107",
			Background: "#fff3cd",
		}
	case score >= 25:
		return Feedback{
			Tier:       "Low",
			Message:    "Low match. Consider significant resume adjustments for this position.",
			Severity:   SeverityError,
			Color:      "#dc3545",
			Background: "#f8d7da",
		}
	default:
		return Feedback{
			Tier:       "Very low",
			Message:    "Very low match. This role may not be suitable or resume needs major updates.",
			Severity:   SeverityError,
			Color:      "#dc3545",
			Background: "#f8d7da",
		}
	}
}
