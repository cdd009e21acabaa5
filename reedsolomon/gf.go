// Package reedsolomon implements GF(2^n) arithmetic and Reed-Solomon
// encoding/decoding shared by every 2D symbology's error correction (C2-C4).
package reedsolomon

import "fmt"

// GenericGF is a Galois field GF(size), built from a primitive polynomial,
// with precomputed exp/log tables for constant-time multiply and inverse.
type GenericGF struct {
	expTable      []int
	logTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
	size          int
	primitive     int
	generatorBase int
}

// Standard fields used by the symbologies this module decodes. Primitive
// polynomials and generator bases are fixed by each symbology's
// specification and must not be altered.
var (
	QRCodeField256     = NewGenericGF(0x011D, 256, 0) // x^8 + x^4 + x^3 + x^2 + 1
	DataMatrixField256 = NewGenericGF(0x012D, 256, 1) // x^8 + x^5 + x^3 + x^2 + 1
	AztecData12        = NewGenericGF(0x1069, 4096, 1)
	AztecData10        = NewGenericGF(0x0409, 1024, 1)
	AztecData8         = DataMatrixField256
	AztecData6         = NewGenericGF(0x0043, 64, 1)
	AztecParam         = NewGenericGF(0x0013, 16, 1)
	MaxiCodeField64    = AztecData6
)

// buildTables fills the exp/log tables for GF(size) generated by primitive:
// expTable[i] = generator^i, logTable[expTable[i]] = i. The generator is
// always 2 (x), matching every field above being defined by its reduction
// polynomial rather than a chosen generator element.
func buildTables(primitive, size int) (exp, log []int) {
	exp = make([]int, size)
	log = make([]int, size)

	x := 1
	for i := 0; i < size; i++ {
		exp[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		log[exp[i]] = i
	}
	return exp, log
}

// NewGenericGF builds GF(size) from the given primitive polynomial (as an
// integer bitmask of its coefficients), with the given generator base used
// by callers constructing RS generator polynomials over this field.
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	exp, log := buildTables(primitive, size)
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      exp,
		logTable:      log,
	}
	gf.zero = newGenericGFPoly(gf, []int{0})
	gf.one = newGenericGFPoly(gf, []int{1})
	return gf
}

// Zero returns this field's zero polynomial.
func (gf *GenericGF) Zero() *GenericGFPoly { return gf.zero }

// One returns this field's one (multiplicative identity) polynomial.
func (gf *GenericGF) One() *GenericGFPoly { return gf.one }

// BuildMonomial returns coefficient * x^degree as a polynomial over this field.
func (gf *GenericGF) BuildMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: BuildMonomial requires a nonnegative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGenericGFPoly(gf, coefficients)
}

// AddOrSubtract computes a+b (equivalently a-b) in any GF(2^n): both
// reduce to XOR since addition is carry-free.
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns the field element 2^a (the generator raised to power a).
func (gf *GenericGF) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns the discrete log of a (base the generator), for nonzero a.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: Log(0) is undefined")
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of nonzero a.
func (gf *GenericGF) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: Inverse(0) is undefined")
	}
	return gf.expTable[gf.size-gf.logTable[a]-1]
}

// Multiply returns a*b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the field's order.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the generator base used for this field's RS codes.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

func (gf *GenericGF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
