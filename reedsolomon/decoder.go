package reedsolomon

import "errors"

// ErrReedSolomon indicates the received codewords contain more errors than
// the configured error-correction capacity can correct.
var ErrReedSolomon = errors.New("reedsolomon: decoding error")

// Decoder corrects errors in a received codeword sequence using the
// classic syndrome -> Euclidean algorithm -> Chien search -> Forney's
// formula pipeline, over a single GenericGF.
type Decoder struct {
	field *GenericGF
}

// NewDecoder returns a Decoder bound to field.
func NewDecoder(field *GenericGF) *Decoder {
	return &Decoder{field: field}
}

// syndromes evaluates received at the field's first twoS generator powers,
// reporting the resulting coefficients (highest power first, as a
// polynomial) and whether all of them were zero (no detectable errors).
func (d *Decoder) syndromes(received []int, twoS int) (*GenericGFPoly, bool) {
	poly := newGenericGFPoly(d.field, received)
	coefficients := make([]int, twoS)
	clean := true
	for i := 0; i < twoS; i++ {
		eval := poly.EvaluateAt(d.field.Exp(i + d.field.GeneratorBase()))
		coefficients[twoS-1-i] = eval
		if eval != 0 {
			clean = false
		}
	}
	return newGenericGFPoly(d.field, coefficients), clean
}

// applyCorrections XORs each error's magnitude into received at the
// position its location decodes to.
func (d *Decoder) applyCorrections(received []int, locations, magnitudes []int) error {
	for i, loc := range locations {
		position := len(received) - 1 - d.field.Log(loc)
		if position < 0 {
			return ErrReedSolomon
		}
		received[position] = AddOrSubtract(received[position], magnitudes[i])
	}
	return nil
}

// Decode corrects errors in received in place and returns how many
// codewords were corrected. twoS is the number of EC codewords (twice the
// error-correcting capacity).
func (d *Decoder) Decode(received []int, twoS int) (int, error) {
	syndrome, clean := d.syndromes(received, twoS)
	if clean {
		return 0, nil
	}

	sigma, omega, err := d.runEuclideanAlgorithm(d.field.BuildMonomial(twoS, 1), syndrome, twoS)
	if err != nil {
		return 0, err
	}
	locations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	magnitudes := d.findErrorMagnitudes(omega, locations)
	if err := d.applyCorrections(received, locations, magnitudes); err != nil {
		return 0, err
	}
	return len(locations), nil
}

// runEuclideanAlgorithm runs the extended Euclidean algorithm on (a, b)
// until the remainder's degree drops below R/2, producing the error
// locator (sigma) and error evaluator (omega) polynomials.
func (d *Decoder) runEuclideanAlgorithm(a, b *GenericGFPoly, R int) (sigma, omega *GenericGFPoly, err error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast, r := a, b
	tLast, t := d.field.Zero(), d.field.One()

	for 2*r.Degree() >= R {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t

		if rLast.IsZero() {
			return nil, nil, ErrReedSolomon
		}
		r = rLastLast
		q := d.field.Zero()
		leadInverse := d.field.Inverse(rLast.GetCoefficient(rLast.Degree()))
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := d.field.Multiply(r.GetCoefficient(r.Degree()), leadInverse)
			q = q.AddOrSubtractPoly(d.field.BuildMonomial(degreeDiff, scale))
			r = r.AddOrSubtractPoly(rLast.MultiplyByMonomial(degreeDiff, scale))
		}

		t = q.MultiplyPoly(tLast).AddOrSubtractPoly(tLastLast)

		if r.Degree() >= rLast.Degree() {
			return nil, nil, ErrReedSolomon
		}
	}

	sigmaTildeAtZero := t.GetCoefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, ErrReedSolomon
	}

	inverse := d.field.Inverse(sigmaTildeAtZero)
	return t.MultiplyScalar(inverse), r.MultiplyScalar(inverse), nil
}

// findErrorLocations runs a Chien search: the error locator's roots are
// the inverses of the error locations.
func (d *Decoder) findErrorLocations(errorLocator *GenericGFPoly) ([]int, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []int{errorLocator.GetCoefficient(1)}, nil
	}
	locations := make([]int, 0, numErrors)
	for i := 1; i < d.field.Size() && len(locations) < numErrors; i++ {
		if errorLocator.EvaluateAt(i) == 0 {
			locations = append(locations, d.field.Inverse(i))
		}
	}
	if len(locations) != numErrors {
		return nil, ErrReedSolomon
	}
	return locations, nil
}

// findErrorMagnitudes applies Forney's formula at each error location to
// recover the magnitude of that error.
func (d *Decoder) findErrorMagnitudes(errorEvaluator *GenericGFPoly, errorLocations []int) []int {
	magnitudes := make([]int, len(errorLocations))
	for i, loc := range errorLocations {
		xiInverse := d.field.Inverse(loc)
		denominator := 1
		for j, other := range errorLocations {
			if i == j {
				continue
			}
			term := d.field.Multiply(other, xiInverse)
			denominator = d.field.Multiply(denominator, AddOrSubtract(term, 1))
		}
		magnitudes[i] = d.field.Multiply(errorEvaluator.EvaluateAt(xiInverse), d.field.Inverse(denominator))
		if d.field.GeneratorBase() != 0 {
			magnitudes[i] = d.field.Multiply(magnitudes[i], xiInverse)
		}
	}
	return magnitudes
}
