package scoring

import (
	"reflect"
	"testing"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:  "three long sentences become units",
			input: "I build backend services. I deploy them to kubernetes. I mentor junior engineers.",
			expect: []string{
				"I build backend services",
				"I deploy them to kubernetes",
				"I mentor junior engineers",
			},
		},
		{
			name:   "short spans are discarded and text collapses",
			input:  "Go dev. SQL. Ten chars.",
			expect: []string{"Go dev. SQL. Ten chars."},
		},
		{
			name:   "fewer than three units collapses to original text",
			input:  "A single long sentence about engineering. Short tail.",
			expect: []string{"A single long sentence about engineering. Short tail."},
		},
		{
			name:   "empty input yields one empty unit",
			input:  "",
			expect: []string{""},
		},
		{
			name:   "whitespace around spans is trimmed",
			input:  "  first long sentence here .  second long sentence here . third long sentence here .",
			expect: []string{"first long sentence here", "second long sentence here", "third long sentence here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Segment(tt.input)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("unexpected units: got %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestSegmentCollapsePreservesOriginalText(t *testing.T) {
	t.Parallel()

	input := "  untouched text with trailing terminator. "
	got := Segment(input)

	if len(got) != 1 || got[0] != input {
		t.Fatalf("expected collapse to the unmodified original text, got %q", got)
	}
}
