package layouter

import (
	"testing"

	"github.com/drodenkirchen/rio/pkg/component"
)

func TestAlignedSpan_Fill(t *testing.T) {
	// A filling component consumes everything the margins leave over,
	// regardless of what it asked for.
	for _, requested := range []float64{0, 50, 500} {
		offset, size := AlignedSpan(100, requested, 2, 3, component.Fill())
		if offset != 2 {
			t.Errorf("requested=%v: offset = %v, want 2", requested, offset)
		}
		if size != 95 {
			t.Errorf("requested=%v: size = %v, want 95", requested, size)
		}
	}
}

func TestAlignedSpan_Fraction(t *testing.T) {
	tests := []struct {
		name       string
		fraction   float64
		wantOffset float64
	}{
		{"start", 0, 2},
		{"center", 0.5, 24.5}, // 2 + 0.5 * (100-50-2-3)
		{"end", 1, 47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, size := AlignedSpan(100, 50, 2, 3, component.At(tt.fraction))
			if offset != tt.wantOffset {
				t.Errorf("offset = %v, want %v", offset, tt.wantOffset)
			}
			if size != 50 {
				t.Errorf("size = %v, want 50", size)
			}
		})
	}
}

func TestAlignedSpan_OverflowIsNotClamped(t *testing.T) {
	// When less space is allocated than requested, the fractional branch
	// reports the requested size anyway; overflow is surfaced, not hidden.
	offset, size := AlignedSpan(40, 50, 2, 3, component.At(0.5))
	if size != 50 {
		t.Errorf("size = %v, want 50 (requested size kept on overflow)", size)
	}
	// surplus = 40-50-2-3 = -15, offset = 2 + 0.5*(-15)
	if offset != -5.5 {
		t.Errorf("offset = %v, want -5.5", offset)
	}
}
