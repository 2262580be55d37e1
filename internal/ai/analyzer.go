package ai

import "context"

// Analysis is the structured qualitative feedback produced by an LLM. The
// fields mirror the tagged sections of the model response; sections the
// model omitted carry named defaults instead of being empty.
type Analysis struct {
	SkillsMatch     string `mapstructure:"skills_match"`
	MissingSkills   string `mapstructure:"missing_skills"`
	ImprovementTips string `mapstructure:"improvement_tips"`
	OverallScore    string `mapstructure:"overall_score"`
	Strengths       string `mapstructure:"strengths"`
	Weaknesses      string `mapstructure:"weaknesses"`

	// Raw is the unparsed model response, kept for debugging.
	Raw string `mapstructure:"-"`
}

// Analyzer produces qualitative feedback for a resume against a job
// description. It is independent of the match score: analyzer failures
// never affect scoring.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (*Analysis, error)
}
