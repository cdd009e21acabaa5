package reedsolomon

import (
	"testing"

	"pgregory.net/rapid"
)

// fields enumerates four of the concrete GF instances defined in gf.go
// (§4.2's "concrete instances required" table), so the field properties
// below run on more than QR's. AztecData8/10/12 are not included;
// MaxiCodeField64 is the same instance as AztecData6.
var fields = map[string]*GenericGF{
	"qr":         QRCodeField256,
	"datamatrix": DataMatrixField256,
	"aztecData6": AztecData6,
	"aztecParam": AztecParam,
}

// TestExpLogInverses checks property 1: exp(log(x)) = x for every nonzero
// field element, and log(exp(i)) = i for every valid table index.
func TestExpLogInverses(t *testing.T) {
	for name, gf := range fields {
		gf := gf
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				x := rapid.IntRange(1, gf.Size()-1).Draw(rt, "x")
				if got := gf.Exp(gf.Log(x)); got != x {
					rt.Fatalf("exp(log(%d)) = %d, want %d", x, got, x)
				}
				i := rapid.IntRange(0, gf.Size()-2).Draw(rt, "i")
				if got := gf.Log(gf.Exp(i)); got != i {
					rt.Fatalf("log(exp(%d)) = %d, want %d", i, got, i)
				}
			})
		})
	}
}

// TestMultiplyInverseAndCommute checks property 2: a*inverse(a) = 1 and
// multiplication commutes.
func TestMultiplyInverseAndCommute(t *testing.T) {
	for name, gf := range fields {
		gf := gf
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				a := rapid.IntRange(1, gf.Size()-1).Draw(rt, "a")
				b := rapid.IntRange(1, gf.Size()-1).Draw(rt, "b")
				if got := gf.Multiply(a, gf.Inverse(a)); got != 1 {
					rt.Fatalf("%d * inverse(%d) = %d, want 1", a, a, got)
				}
				if ab, ba := gf.Multiply(a, b), gf.Multiply(b, a); ab != ba {
					rt.Fatalf("multiply not commutative: %d*%d=%d, %d*%d=%d", a, b, ab, b, a, ba)
				}
			})
		})
	}
}

// TestRSRoundTrip checks property 4 over the QR field: encoding then
// decoding with errors up to the correction capacity recovers the original
// codeword and reports how many errors it corrected.
func TestRSRoundTrip(t *testing.T) {
	field := QRCodeField256
	rapid.Check(t, func(rt *rapid.T) {
		dataSize := rapid.IntRange(1, 20).Draw(rt, "dataSize")
		ecSize := rapid.IntRange(1, 10).Draw(rt, "ecSize") * 2

		data := make([]int, dataSize)
		for i := range data {
			data[i] = rapid.IntRange(0, 255).Draw(rt, "d")
		}

		toEncode := make([]int, dataSize+ecSize)
		copy(toEncode, data)
		NewEncoder(field).Encode(toEncode, ecSize)

		original := make([]int, len(toEncode))
		copy(original, toEncode)

		maxErrors := ecSize / 2
		numErrors := rapid.IntRange(0, maxErrors).Draw(rt, "numErrors")
		corrupted := make([]int, len(toEncode))
		copy(corrupted, toEncode)

		positions := shuffledIndices(len(corrupted), rt)
		for i := 0; i < numErrors; i++ {
			pos := positions[i]
			corrupted[pos] = (corrupted[pos] + 1 + rapid.IntRange(0, 253).Draw(rt, "delta")) % 256
		}

		corrected, err := NewDecoder(field).Decode(corrupted, ecSize)
		if err != nil {
			rt.Fatalf("decode failed within capacity (%d errors, %d ecSize): %v", numErrors, ecSize, err)
		}
		if corrected != numErrors {
			rt.Fatalf("errorsCorrected = %d, want %d", corrected, numErrors)
		}
		for i := range original {
			if corrupted[i] != original[i] {
				rt.Fatalf("position %d: got %d, want %d", i, corrupted[i], original[i])
			}
		}
	})
}

// shuffledIndices returns a Fisher-Yates shuffle of [0,n) driven by rapid
// draws, so the first numErrors entries are a uniformly random sample of
// corruption positions without needing a distinct-permutation generator.
func shuffledIndices(n int, rt *rapid.T) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rapid.IntRange(0, i).Draw(rt, "swap")
		out[i], out[j] = out[j], out[i]
	}
	return out
}
