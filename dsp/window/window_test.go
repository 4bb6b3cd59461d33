package window

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGenerateFinite(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHann,
		TypeHamming,
		TypeBlackman,
		TypeBlackmanHarris4Term,
		TypeKaiser,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
				if !almostEqual(v, w[len(w)-1-i], 1e-12) {
					t.Fatalf("coefficient[%d]=%v not symmetric with %v", i, v, w[len(w)-1-i])
				}
			}
		})
	}
}

func TestGoldenVectors(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		opts []Option
		want []float64
		tol  float64
	}{
		{
			name: "hann",
			typ:  TypeHann,
			want: []float64{0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095, 0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0},
			tol:  1e-12,
		},
		{
			name: "hamming",
			typ:  TypeHamming,
			want: []float64{0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128, 0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08},
			tol:  1e-12,
		},
		{
			name: "blackman-harris-4",
			typ:  TypeBlackmanHarris4Term,
			want: []float64{0.00006, 0.03339172347815117, 0.332833504298565, 0.8893697722232837, 0.8893697722232838, 0.3328335042985651, 0.03339172347815122, 0.00006},
			tol:  1e-12,
		},
		{
			name: "kaiser beta 8",
			typ:  TypeKaiser,
			opts: []Option{WithAlpha(8)},
			want: []float64{0.002338830512733327, 0.10919581096049485, 0.48711868430391303, 0.9261577377427728, 0.9261577377427728, 0.48711868430391303, 0.10919581096049485, 0.002338830512733327},
			tol:  1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.typ, len(tt.want), tt.opts...)
			for i := range tt.want {
				if !almostEqual(got[i], tt.want[i], tt.tol) {
					t.Fatalf("index %d: got %.17g, want %.17g", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateEdgeLengths(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("length 0: got %v, want nil", w)
	}
	if w := Generate(TypeHann, -3); w != nil {
		t.Fatalf("negative length: got %v, want nil", w)
	}

	w := Generate(TypeHann, 1)
	if len(w) != 1 || !almostEqual(w[0], 1, 1e-12) {
		t.Fatalf("length 1 hann: got %v, want [1]", w)
	}
}

func TestUnknownTypeIsRectangular(t *testing.T) {
	for i, v := range Generate(Type(99), 5) {
		if v != 1 {
			t.Fatalf("coefficient %d: got %v, want 1", i, v)
		}
	}
	if got := Type(99).String(); got != "Type(99)" {
		t.Fatalf("String()=%q", got)
	}
}

func TestApplyInPlaceByType(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	Apply(TypeRectangular, buf)

	for i, v := range buf {
		if v != float64(i+1) {
			t.Fatalf("rectangular should be passthrough at %d: %v", i, v)
		}
	}

	Apply(TypeHann, buf)

	if buf[0] != 0 {
		t.Fatalf("hann first sample should be 0, got %v", buf[0])
	}

	Apply(TypeHann, nil)
}

func TestKaiserZeroBetaIsRectangular(t *testing.T) {
	for i, v := range Generate(TypeKaiser, 9, WithAlpha(0)) {
		if v != 1 {
			t.Fatalf("coefficient %d: got %v, want 1", i, v)
		}
	}
}

