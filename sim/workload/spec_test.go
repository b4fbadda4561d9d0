package workload

import (
	"errors"
	"testing"
)

func TestDefaultBatchSpec_Composition(t *testing.T) {
	spec := DefaultBatchSpec()

	if err := spec.Validate(); err != nil {
		t.Fatalf("default spec invalid: %v", err)
	}
	if spec.Size() != 500 {
		t.Errorf("Size() = %d, want 500", spec.Size())
	}
	wantCounts := []int{30, 70, 100, 200, 100}
	for i, b := range spec.Bands {
		if b.Count != wantCounts[i] {
			t.Errorf("band %d count = %d, want %d", i, b.Count, wantCounts[i])
		}
	}
}

func TestBatchSpec_Validate_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec BatchSpec
	}{
		{"no bands", BatchSpec{}},
		{"zero min", BatchSpec{Bands: []LengthBand{{Min: 0, Max: 10, Count: 1}}}},
		{"max below min", BatchSpec{Bands: []LengthBand{{Min: 20, Max: 10, Count: 1}}}},
		{"negative count", BatchSpec{Bands: []LengthBand{{Min: 1, Max: 10, Count: -1}}}},
		{"empty batch", BatchSpec{Bands: []LengthBand{{Min: 1, Max: 10, Count: 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidBatchSpec) {
				t.Errorf("expected ErrInvalidBatchSpec, got %v", err)
			}
		})
	}
}
