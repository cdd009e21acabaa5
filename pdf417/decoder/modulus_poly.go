package decoder

import "fmt"

// ModulusPoly is a polynomial over a ModulusGF.
type ModulusPoly struct {
	field        *ModulusGF
	coefficients []int
}

// trimLeadingZeros drops leading zero coefficients so the degree matches
// the first non-zero term, collapsing an all-zero slice to the constant
// polynomial "0".
func trimLeadingZeros(coefficients []int) []int {
	if len(coefficients) <= 1 || coefficients[0] != 0 {
		return coefficients
	}
	firstNonZero := 1
	for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
		firstNonZero++
	}
	if firstNonZero == len(coefficients) {
		return []int{0}
	}
	trimmed := make([]int, len(coefficients)-firstNonZero)
	copy(trimmed, coefficients[firstNonZero:])
	return trimmed
}

// NewModulusPoly creates a polynomial in field with the given coefficients,
// highest degree first.
func NewModulusPoly(field *ModulusGF, coefficients []int) *ModulusPoly {
	if len(coefficients) == 0 {
		panic("decoder: empty coefficients")
	}
	return &ModulusPoly{
		field:        field,
		coefficients: trimLeadingZeros(coefficients),
	}
}

// Coefficients returns the coefficient slice of this polynomial.
func (p *ModulusPoly) Coefficients() []int {
	return p.coefficients
}

// Degree returns the degree of this polynomial.
func (p *ModulusPoly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *ModulusPoly) IsZero() bool {
	return p.coefficients[0] == 0
}

// GetCoefficient returns the coefficient of the x^degree term.
func (p *ModulusPoly) GetCoefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates this polynomial at a.
func (p *ModulusPoly) EvaluateAt(a int) int {
	switch a {
	case 0:
		return p.GetCoefficient(0)
	case 1:
		result := 0
		for _, coefficient := range p.coefficients {
			result = p.field.Add(result, coefficient)
		}
		return result
	default:
		result := p.coefficients[0]
		for _, coefficient := range p.coefficients[1:] {
			result = p.field.Add(p.field.Multiply(a, result), coefficient)
		}
		return result
	}
}

func (p *ModulusPoly) requireSameField(other *ModulusPoly) {
	if p.field != other.field {
		panic("decoder: ModulusPolys do not have same ModulusGF field")
	}
}

// Add returns the sum of this polynomial and other.
func (p *ModulusPoly) Add(other *ModulusPoly) *ModulusPoly {
	p.requireSameField(other)
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	smaller, larger := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	lengthDiff := len(larger) - len(smaller)

	sum := make([]int, len(larger))
	copy(sum, larger[:lengthDiff]) // high-order terms only the larger polynomial has
	for i := lengthDiff; i < len(larger); i++ {
		sum[i] = p.field.Add(smaller[i-lengthDiff], larger[i])
	}
	return NewModulusPoly(p.field, sum)
}

// Subtract returns the difference of this polynomial and other.
func (p *ModulusPoly) Subtract(other *ModulusPoly) *ModulusPoly {
	p.requireSameField(other)
	if other.IsZero() {
		return p
	}
	return p.Add(other.Negative())
}

// Multiply returns the product of this polynomial and other.
func (p *ModulusPoly) Multiply(other *ModulusPoly) *ModulusPoly {
	p.requireSameField(other)
	if p.IsZero() || other.IsZero() {
		return p.field.Zero()
	}
	a, b := p.coefficients, other.coefficients
	product := make([]int, len(a)+len(b)-1)
	for i, aCoeff := range a {
		for j, bCoeff := range b {
			product[i+j] = p.field.Add(product[i+j], p.field.Multiply(aCoeff, bCoeff))
		}
	}
	return NewModulusPoly(p.field, product)
}

// Negative returns the negation of this polynomial.
func (p *ModulusPoly) Negative() *ModulusPoly {
	negated := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		negated[i] = p.field.Subtract(0, c)
	}
	return NewModulusPoly(p.field, negated)
}

// MultiplyScalar returns this polynomial multiplied by a scalar.
func (p *ModulusPoly) MultiplyScalar(scalar int) *ModulusPoly {
	if scalar == 0 {
		return p.field.Zero()
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, scalar)
	}
	return NewModulusPoly(p.field, product)
}

// MultiplyByMonomial returns this polynomial multiplied by coefficient * x^degree.
func (p *ModulusPoly) MultiplyByMonomial(degree, coefficient int) *ModulusPoly {
	if degree < 0 {
		panic("decoder: negative degree")
	}
	if coefficient == 0 {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return NewModulusPoly(p.field, product)
}

func (p *ModulusPoly) String() string {
	result := ""
	for degree := p.Degree(); degree >= 0; degree-- {
		coefficient := p.GetCoefficient(degree)
		if coefficient == 0 {
			continue
		}
		if coefficient < 0 {
			result += " - "
			coefficient = -coefficient
		} else if len(result) > 0 {
			result += " + "
		}
		if degree == 0 || coefficient != 1 {
			result += fmt.Sprintf("%d", coefficient)
		}
		switch degree {
		case 0:
		case 1:
			result += "x"
		default:
			result += fmt.Sprintf("x^%d", degree)
		}
	}
	return result
}
