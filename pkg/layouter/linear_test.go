package layouter

import (
	"testing"

	"github.com/drodenkirchen/rio/pkg/errors"
)

func TestLinearNatural(t *testing.T) {
	tests := []struct {
		name    string
		sizes   []float64
		spacing float64
		want    float64
	}{
		{"two children with spacing", []float64{10, 20}, 5, 35},
		{"single child has no spacing", []float64{10}, 5, 10},
		{"empty container", nil, 5, 0},
		{"zero spacing", []float64{1, 2, 3}, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := linearNatural(tt.sizes, tt.spacing); got != tt.want {
				t.Errorf("linearNatural(%v, %v) = %v, want %v", tt.sizes, tt.spacing, got, tt.want)
			}
		})
	}
}

func TestLinearAllocate_SequentialPlacement(t *testing.T) {
	spans, err := linearAllocate([]float64{10, 20}, 5, nil)
	if err != nil {
		t.Fatalf("linearAllocate() error: %v", err)
	}

	want := []span{{start: 0, size: 10}, {start: 15, size: 20}}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(spans), len(want))
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span[%d] = %+v, want %+v", i, spans[i], want[i])
		}
	}
}

func TestLinearAllocate_ProportionsAreRejected(t *testing.T) {
	_, err := linearAllocate([]float64{10, 20}, 0, []float64{1, 2})
	if err == nil {
		t.Fatal("linearAllocate() with proportions should fail")
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedProportions) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupportedProportions)
	}
}
