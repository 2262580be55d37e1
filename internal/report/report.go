// Package report renders scoring results for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/resume-scorer/internal/ai"
	"github.com/spigell/resume-scorer/internal/scoring"
)

// Report holds everything the run command presents to the user.
type Report struct {
	Score          int
	Feedback       scoring.Feedback
	ResumeText     string
	JobDescription string

	// Analysis is optional qualitative feedback; nil when the AI analyzer
	// is disabled or failed.
	Analysis *ai.Analysis
}

type styles struct {
	banner  lipgloss.Style
	message lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
}

func newStyles(feedback scoring.Feedback) styles {
	return styles{
		banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(feedback.Color)).
			Background(lipgloss.Color(feedback.Background)).
			Padding(0, 2),
		message: lipgloss.NewStyle().
			Foreground(lipgloss.Color(feedback.Color)),
		heading: lipgloss.NewStyle().Bold(true).Underline(true),
		label:   lipgloss.NewStyle().Bold(true),
	}
}

// Render returns the full report as a printable string.
func (r *Report) Render() string {
	st := newStyles(r.Feedback)

	var b strings.Builder

	b.WriteString(st.banner.Render(fmt.Sprintf("%d%% Match Score (%s)", r.Score, r.Feedback.Tier)))
	b.WriteString("\n\n")
	b.WriteString(st.message.Render(r.Feedback.Message))
	b.WriteString("\n\n")

	b.WriteString(st.heading.Render("Document stats"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", st.label.Render("Resume words:"), len(strings.Fields(r.ResumeText)))
	fmt.Fprintf(&b, "%s %d\n", st.label.Render("Job description words:"), len(strings.Fields(r.JobDescription)))

	sections := scoring.ExtractSections(r.ResumeText)
	if n := len(sections.Skills); n > 0 {
		fmt.Fprintf(&b, "%s %d lines\n", st.label.Render("Skills section:"), n)
	}
	if n := len(sections.Experience); n > 0 {
		fmt.Fprintf(&b, "%s %d lines\n", st.label.Render("Experience section:"), n)
	}
	if n := len(sections.Education); n > 0 {
		fmt.Fprintf(&b, "%s %d lines\n", st.label.Render("Education section:"), n)
	}

	if r.Analysis != nil {
		b.WriteString("\n")
		b.WriteString(st.heading.Render("AI feedback"))
		b.WriteString("\n")
		writeAnalysisSection(&b, st, "Skills match", r.Analysis.SkillsMatch)
		writeAnalysisSection(&b, st, "Missing skills", r.Analysis.MissingSkills)
		writeAnalysisSection(&b, st, "Improvement tips", r.Analysis.ImprovementTips)
		writeAnalysisSection(&b, st, "Overall score", r.Analysis.OverallScore)
		writeAnalysisSection(&b, st, "Strengths", r.Analysis.Strengths)
		writeAnalysisSection(&b, st, "Weaknesses", r.Analysis.Weaknesses)
	}

	return b.String()
}

func writeAnalysisSection(b *strings.Builder, st styles, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", st.label.Render(label+":"), value)
}
