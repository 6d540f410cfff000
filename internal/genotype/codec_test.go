package genotype

import (
	"math"
	"math/rand"
	"testing"
)

func TestEncodeDecodeRoundTripWithinQuantization(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for digits := 1; digits <= 9; digits++ {
		n := 4
		gn := New(n, digits)
		ph := make([]float64, n)
		out := make([]float64, n)
		for trial := 0; trial < 50; trial++ {
			for k := range ph {
				ph[k] = rng.Float64()
			}
			Encode(ph, digits, gn)
			Decode(gn, digits, out)
			step := math.Pow(10, -float64(digits))
			for k := range ph {
				if diff := math.Abs(out[k] - ph[k]); diff > step {
					t.Fatalf("d=%d component %d: decode(encode(%v)) = %v, off by %v > %v", digits, k, ph[k], out[k], diff, step)
				}
			}
		}
	}
}

func TestEncodeDigitsAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	gn := New(3, 5)
	ph := make([]float64, 3)
	for trial := 0; trial < 200; trial++ {
		for k := range ph {
			ph[k] = rng.Float64()
		}
		Encode(ph, 5, gn)
		for i, d := range gn {
			if d > 9 {
				t.Fatalf("digit %d out of range: %d", i, d)
			}
		}
	}
}

func TestDecodeEncodeReproducesDigits(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	digits := 6
	gn := New(2, digits)
	for i := range gn {
		gn[i] = uint8(rng.Intn(10))
	}
	ph := make([]float64, 2)
	Decode(gn, digits, ph)
	back := New(2, digits)
	Encode(ph, digits, back)
	for i := range gn {
		if gn[i] != back[i] {
			t.Fatalf("digit %d changed after decode/encode: %d != %d", i, gn[i], back[i])
		}
	}
}

func TestEncodeClampsUpperBound(t *testing.T) {
	gn := New(1, 3)
	Encode([]float64{1.0}, 3, gn)
	want := Genotype{9, 9, 9}
	for i := range want {
		if gn[i] != want[i] {
			t.Fatalf("encode(1.0) = %v, want %v", gn, want)
		}
	}
	out := make([]float64, 1)
	Decode(gn, 3, out)
	if out[0] >= 1 {
		t.Fatalf("decoded clamped value %v escaped [0,1)", out[0])
	}
}
