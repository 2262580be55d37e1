package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/resume-scorer/internal/ai"
	"github.com/spigell/resume-scorer/internal/utils"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200

	// Generation models degrade on very long unstructured documents, so
	// inputs are truncated before prompting.
	maxResumeRunes         = 2000
	maxJobDescriptionRunes = 1000
)

// Analyzer produces structured qualitative feedback by prompting Gemini and
// parsing its tagged-section response.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAnalyzer(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (*ai.Analysis, error) {
	prompt := buildPrompt(resumeText, jobDescription)

	a.logger.Debug("gemini analysis request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini analysis response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	var analysis ai.Analysis
	if err := mapstructure.Decode(extractTaggedSections(raw), &analysis); err != nil {
		return nil, fmt.Errorf("decode analysis sections: %w", err)
	}
	analysis.Raw = raw

	return &analysis, nil
}

func buildPrompt(resumeText, jobDescription string) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{RESUME}}", truncateRunes(resumeText, maxResumeRunes))
	return strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", truncateRunes(jobDescription, maxJobDescriptionRunes))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
