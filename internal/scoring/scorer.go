package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Encoder maps text units to fixed-length embedding vectors, one vector per
// unit, in input order. Implementations must be deterministic for a fixed
// model and input.
type Encoder interface {
	Encode(ctx context.Context, units []string) ([][]float64, error)
}

const (
	semanticFloor   = 10
	semanticCeiling = 95
)

// Scorer computes match scores between a resume and a job description. The
// encoder is injected so tests can substitute a deterministic stub.
type Scorer struct {
	encoder Encoder
	logger  *zap.Logger
}

func NewScorer(encoder Encoder, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scorer{
		encoder: encoder,
		logger:  logger,
	}
}

// Score returns the match percentage between a resume and a job
// description. The semantic path yields a value in [10, 95]; any failure
// there silently degrades to the keyword fallback, which yields a value in
// [15, 90]. Score never fails.
func (s *Scorer) Score(ctx context.Context, resumeText, jobDescription string) int {
	score, err := s.semanticScore(ctx, resumeText, jobDescription)
	if err != nil {
		s.logger.Debug("semantic scoring unavailable, using keyword fallback", zap.Error(err))
		return fallbackScore(resumeText, jobDescription)
	}

	return score
}

func (s *Scorer) semanticScore(ctx context.Context, resumeText, jobDescription string) (score int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("semantic scoring panicked: %v", r)
		}
	}()

	if s.encoder == nil {
		return 0, errors.New("no encoder configured")
	}

	resumeUnits := Segment(resumeText)
	jdUnits := Segment(jobDescription)

	resumeVecs, err := s.encoder.Encode(ctx, resumeUnits)
	if err != nil {
		return 0, fmt.Errorf("encoding resume units: %w", err)
	}

	jdVecs, err := s.encoder.Encode(ctx, jdUnits)
	if err != nil {
		return 0, fmt.Errorf("encoding job description units: %w", err)
	}

	if len(resumeVecs) != len(resumeUnits) || len(jdVecs) != len(jdUnits) {
		return 0, errors.New("encoder returned a mismatched number of vectors")
	}

	overall, err := rowMaxMean(resumeVecs, jdVecs)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("semantic similarity computed",
		zap.Int("resume_units", len(resumeUnits)),
		zap.Int("job_description_units", len(jdUnits)),
		zap.Float64("overall_similarity", overall),
	)

	return clamp(int(math.Round(overall*100)), semanticFloor, semanticCeiling), nil
}

// rowMaxMean averages, over all resume vectors, the best cosine similarity
// each achieves against any job description vector. The direction is
// intentionally asymmetric: job description units nothing matches do not
// penalize the score on their own.
func rowMaxMean(resumeVecs, jdVecs [][]float64) (float64, error) {
	if len(resumeVecs) == 0 || len(jdVecs) == 0 {
		return 0, errors.New("empty embedding set")
	}

	var sum float64
	for _, rv := range resumeVecs {
		best := -1.0
		for _, jv := range jdVecs {
			sim, err := cosineSimilarity(rv, jv)
			if err != nil {
				return 0, err
			}
			if sim > best {
				best = sim
			}
		}
		sum += best
	}

	return sum / float64(len(resumeVecs)), nil
}

func cosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, errors.New("embedding dimensions do not match")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	// A zero vector has no direction; treat it as completely dissimilar.
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
