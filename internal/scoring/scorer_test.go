package scoring

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
)

type stubEncoder struct {
	vectors map[string][]float64
	err     error
	panics  bool
	calls   int
}

func (s *stubEncoder) Encode(_ context.Context, units []string) ([][]float64, error) {
	s.calls++
	if s.panics {
		panic("encoder exploded")
	}
	if s.err != nil {
		return nil, s.err
	}

	out := make([][]float64, 0, len(units))
	for _, unit := range units {
		vec, ok := s.vectors[unit]
		if !ok {
			return nil, fmt.Errorf("no vector for unit %q", unit)
		}
		out = append(out, vec)
	}

	return out, nil
}

func TestScoreIdenticalTextsHitsSemanticCeiling(t *testing.T) {
	t.Parallel()

	text := "short resume"
	enc := &stubEncoder{vectors: map[string][]float64{
		text: {1, 0},
	}}

	scorer := NewScorer(enc, zap.NewNop())
	score := scorer.Score(context.Background(), text, text)

	// Cosine similarity 1.0 scales to 100 and clamps to the ceiling.
	if score != 95 {
		t.Fatalf("expected 95, got %d", score)
	}
}

func TestScoreOrthogonalTextsHitsSemanticFloor(t *testing.T) {
	t.Parallel()

	enc := &stubEncoder{vectors: map[string][]float64{
		"resume text": {1, 0},
		"vacancy ad":  {0, 1},
	}}

	scorer := NewScorer(enc, zap.NewNop())
	score := scorer.Score(context.Background(), "resume text", "vacancy ad")

	if score != 10 {
		t.Fatalf("expected 10, got %d", score)
	}
}

func TestScoreRowMaxAggregation(t *testing.T) {
	t.Parallel()

	resume := "matching sentence one. matching sentence two. unrelated sentence three."
	jd := "the job description"

	enc := &stubEncoder{vectors: map[string][]float64{
		"matching sentence one":    {1, 0},
		"matching sentence two":    {1, 0},
		"unrelated sentence three": {0, 1},
		jd:                         {1, 0},
	}}

	scorer := NewScorer(enc, zap.NewNop())
	score := scorer.Score(context.Background(), resume, jd)

	// Row maxima are 1, 1 and 0; the mean of 2/3 rounds to 67.
	if score != 67 {
		t.Fatalf("expected 67, got %d", score)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	t.Parallel()

	enc := &stubEncoder{vectors: map[string][]float64{
		"resume text": {0.6, 0.8},
		"vacancy ad":  {0.8, 0.6},
	}}

	scorer := NewScorer(enc, zap.NewNop())

	first := scorer.Score(context.Background(), "resume text", "vacancy ad")
	second := scorer.Score(context.Background(), "resume text", "vacancy ad")

	if first != second {
		t.Fatalf("expected identical scores, got %d and %d", first, second)
	}
}

func TestScoreFallsBackOnEncoderError(t *testing.T) {
	t.Parallel()

	enc := &stubEncoder{err: errors.New("model unavailable")}
	scorer := NewScorer(enc, zap.NewNop())

	resume := "I have experience with python and react and strong leadership skills."
	jd := "Looking for a python developer with react experience and leadership."

	score := scorer.Score(context.Background(), resume, jd)

	// All job description dictionary terms occur in the resume, so the
	// fallback produces 100 weighted and clamps to 90.
	if score != 90 {
		t.Fatalf("expected fallback score 90, got %d", score)
	}
}

func TestScoreFallsBackOnEncoderPanic(t *testing.T) {
	t.Parallel()

	enc := &stubEncoder{panics: true}
	scorer := NewScorer(enc, zap.NewNop())

	score := scorer.Score(context.Background(), "any resume", "any vacancy")

	if score < 15 || score > 90 {
		t.Fatalf("expected a fallback-range score, got %d", score)
	}
}

func TestScoreFallsBackWithoutEncoder(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(nil, nil)
	score := scorer.Score(context.Background(), "resume", "")

	// Empty job description means both dictionaries match nothing, so the
	// 60/70 defaults apply: 0.7*60 + 0.3*70 = 63.
	if score != 63 {
		t.Fatalf("expected 63, got %d", score)
	}
}

func TestScoreFallsBackOnDimensionMismatch(t *testing.T) {
	t.Parallel()

	enc := &stubEncoder{vectors: map[string][]float64{
		"resume text": {1, 0, 0},
		"vacancy ad":  {0, 1},
	}}

	scorer := NewScorer(enc, zap.NewNop())
	score := scorer.Score(context.Background(), "resume text", "vacancy ad")

	if score < 15 || score > 90 {
		t.Fatalf("expected a fallback-range score, got %d", score)
	}
}

func TestScoreZeroVectorsClampToFloor(t *testing.T) {
	t.Parallel()

	enc := &stubEncoder{vectors: map[string][]float64{
		"resume text": {0, 0},
		"vacancy ad":  {0, 0},
	}}

	scorer := NewScorer(enc, zap.NewNop())
	score := scorer.Score(context.Background(), "resume text", "vacancy ad")

	// Zero-norm vectors score 0 similarity instead of failing.
	if score != 10 {
		t.Fatalf("expected 10, got %d", score)
	}
}

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    []float64
		expect  float64
		wantErr bool
	}{
		{name: "identical", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, expect: 1},
		{name: "opposite", a: []float64{1, 0}, b: []float64{-1, 0}, expect: -1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, expect: 0},
		{name: "zero vector", a: []float64{0, 0}, b: []float64{1, 1}, expect: 0},
		{name: "mismatched dims", a: []float64{1}, b: []float64{1, 2}, wantErr: true},
		{name: "empty", a: nil, b: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cosineSimilarity(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := got - tt.expect; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
