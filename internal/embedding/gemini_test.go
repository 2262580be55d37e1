package embedding

import (
	"context"
	"testing"
)

func TestEncodeRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	p := NewProvider("key", "", nil)

	if _, err := p.Encode(context.Background(), nil); err == nil {
		t.Fatalf("expected an error for empty input")
	}
}

func TestEncodeRequiresAPIKey(t *testing.T) {
	t.Parallel()

	p := NewProvider("   ", "", nil)

	_, err := p.Encode(context.Background(), []string{"some unit"})
	if err == nil {
		t.Fatalf("expected an error without an api key")
	}

	// The init failure is sticky: later calls keep returning it.
	_, second := p.Encode(context.Background(), []string{"some unit"})
	if second == nil || second.Error() != err.Error() {
		t.Fatalf("expected the same init error, got %v", second)
	}
}

func TestNewProviderDefaultsModel(t *testing.T) {
	t.Parallel()

	if got := NewProvider("key", "  ", nil).Model(); got != defaultModel {
		t.Fatalf("expected default model, got %q", got)
	}

	if got := NewProvider("key", "custom-model", nil).Model(); got != "custom-model" {
		t.Fatalf("expected custom model, got %q", got)
	}
}
