package source_test

import (
	"errors"
	"testing"

	"github.com/ontapquiz/backend/internal/domain/source"
)

func testRegistry() *source.Registry {
	return source.NewRegistry([]source.Source{
		{Key: "general", Label: "Câu hỏi chung", Location: "general.csv"},
		{Key: "secondary", Label: "Phần bổ sung", Location: "secondary.csv"},
	})
}

func TestByKey(t *testing.T) {
	registry := testRegistry()

	s, ok := registry.ByKey("secondary")
	if !ok {
		t.Fatal("expected secondary to resolve")
	}
	if s.Label != "Phần bổ sung" {
		t.Errorf("unexpected label %q", s.Label)
	}

	if _, ok := registry.ByKey("tertiary"); ok {
		t.Error("tertiary is not configured and must not resolve")
	}
}

func TestResolve(t *testing.T) {
	registry := testRegistry()

	tests := []struct {
		name string
		kind source.Kind
		want []string
	}{
		{"single bank", source.KindGeneral, []string{"general"}},
		{"all banks in registry order", source.KindAll, []string{"general", "secondary"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := registry.Resolve(tt.kind)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(keys) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, keys)
			}
			for i := range keys {
				if keys[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, keys)
				}
			}
		})
	}
}

func TestResolve_UnknownKind(t *testing.T) {
	registry := testRegistry()

	// Tertiary is a valid kind but has no configured bank here.
	if _, err := registry.Resolve(source.KindTertiary); !errors.Is(err, source.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := registry.Resolve(source.Kind("bogus")); !errors.Is(err, source.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}
