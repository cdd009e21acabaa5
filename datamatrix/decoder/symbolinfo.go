package decoder

import symdecode "github.com/joshgraham/symdecode"

// ShapeHint constrains which Data Matrix symbol shapes Lookup considers.
type ShapeHint int

const (
	// ShapeHintForceNone considers both square and rectangular symbols.
	ShapeHintForceNone ShapeHint = iota
	// ShapeHintForceSquare considers only square symbols.
	ShapeHintForceSquare
	// ShapeHintForceRectangle considers only rectangular symbols.
	ShapeHintForceRectangle
)

// Rectangular reports whether this version describes a rectangular (as
// opposed to square) symbol. Versions 1-24 are square; 25 and up are
// rectangular, including the DMRE extension sizes.
func (v *Version) Rectangular() bool {
	return v.versionNumber >= 25
}

// DataCapacity returns the total number of data codewords (summed across
// every error-correction block) this version can carry.
func (v *Version) DataCapacity() int {
	capacity := 0
	for _, block := range v.ecBlocks.Blocks {
		capacity += block.Count * block.DataCodewords
	}
	return capacity
}

// Lookup finds the smallest Data Matrix version that can hold dataCodewords
// data codewords under the given shape constraint. Versions are tried in
// ascending data capacity order, so the result is always the smallest symbol
// that fits. It fails with ErrIllegalArgument if dataCodewords exceeds the
// capacity of every version matching shapeHint.
func Lookup(dataCodewords int, shapeHint ShapeHint) (*Version, error) {
	var best *Version
	for i := range versions {
		v := &versions[i]
		if shapeHint == ShapeHintForceSquare && v.Rectangular() {
			continue
		}
		if shapeHint == ShapeHintForceRectangle && !v.Rectangular() {
			continue
		}
		capacity := v.DataCapacity()
		if capacity < dataCodewords {
			continue
		}
		if best == nil || capacity < best.DataCapacity() {
			best = v
		}
	}
	if best == nil {
		return nil, symdecode.ErrIllegalArgument
	}
	return best, nil
}

// LookupBySize returns the version matching the given overall symbol
// dimensions. Unlike Lookup, an unmatched geometry is not an error: it
// returns (nil, nil), since a caller probing arbitrary sampled dimensions
// expects "no such symbol" as a normal outcome rather than a failure.
func LookupBySize(symbolWidth, symbolHeight int) (*Version, error) {
	v, err := GetVersionForDimensions(symbolHeight, symbolWidth)
	if err != nil {
		return nil, nil
	}
	return v, nil
}
