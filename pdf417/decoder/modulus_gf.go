// Package decoder implements the PDF417 barcode decoder.
package decoder

// ModulusGF is a Galois field built from powers of a generator, reduced
// modulo a prime modulus, used for PDF417 error correction.
type ModulusGF struct {
	expTable []int
	logTable []int
	zero     *ModulusPoly
	one      *ModulusPoly
	modulus  int
}

// PDF417GF is the pre-built Galois Field for PDF417 (modulus 929, generator 3).
// This must be a var initialization (not init()) so that other package-level
// vars like scanErrorCorrection can depend on it via Go's dependency ordering.
var PDF417GF = NewModulusGF(929, 3)

func buildExpLogTables(modulus, generator int) (exp, log []int) {
	exp = make([]int, modulus)
	log = make([]int, modulus)
	x := 1
	for i := 0; i < modulus; i++ {
		exp[i] = x
		x = (x * generator) % modulus
	}
	for i := 0; i < modulus-1; i++ {
		log[exp[i]] = i
	}
	// log[0] == 0 but this should never be used
	return exp, log
}

// NewModulusGF builds the exponential/logarithm tables for a field of the
// given modulus and generator.
func NewModulusGF(modulus, generator int) *ModulusGF {
	exp, log := buildExpLogTables(modulus, generator)
	gf := &ModulusGF{modulus: modulus, expTable: exp, logTable: log}
	gf.zero = NewModulusPoly(gf, []int{0})
	gf.one = NewModulusPoly(gf, []int{1})
	return gf
}

// Zero returns the zero polynomial for this field.
func (gf *ModulusGF) Zero() *ModulusPoly { return gf.zero }

// One returns the one polynomial for this field.
func (gf *ModulusGF) One() *ModulusPoly { return gf.one }

// BuildMonomial returns coefficient * x^degree in this field.
func (gf *ModulusGF) BuildMonomial(degree, coefficient int) *ModulusPoly {
	if degree < 0 {
		panic("decoder: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return NewModulusPoly(gf, coefficients)
}

// Add returns (a + b) mod modulus.
func (gf *ModulusGF) Add(a, b int) int {
	return (a + b) % gf.modulus
}

// Subtract returns (a - b) mod modulus.
func (gf *ModulusGF) Subtract(a, b int) int {
	return (gf.modulus + a - b) % gf.modulus
}

// Exp returns the exponential table value at index a.
func (gf *ModulusGF) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns the logarithm of a in this field. Panics if a is 0.
func (gf *ModulusGF) Log(a int) int {
	if a == 0 {
		panic("decoder: log(0)")
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a. Panics if a is 0.
func (gf *ModulusGF) Inverse(a int) int {
	if a == 0 {
		panic("decoder: inverse(0)")
	}
	return gf.expTable[gf.modulus-gf.logTable[a]-1]
}

// Multiply returns a * b in this field.
func (gf *ModulusGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.modulus-1)]
}

// Size returns the modulus (size) of this field.
func (gf *ModulusGF) Size() int {
	return gf.modulus
}
