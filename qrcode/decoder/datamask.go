package decoder

import "github.com/joshgraham/symdecode/bitutil"

// DataMaskFunc reports whether module (i, j) is flipped by a QR data mask.
type DataMaskFunc func(i, j int) bool

// DataMasks holds the 8 standard QR data mask patterns, indexed by their
// 3-bit pattern reference number.
var DataMasks = [8]DataMaskFunc{
	func(i, j int) bool { return (i+j)&0x01 == 0 },
	func(i, j int) bool { return i&0x01 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return ((i/2)+(j/3))&0x01 == 0 },
	func(i, j int) bool { return (i*j)%6 == 0 },
	func(i, j int) bool { return (i*j)%6 < 3 },
	func(i, j int) bool { return ((i + j + (i*j)%3) & 0x01) == 0 },
}

// UnmaskBitMatrix flips every module of a dimension x dimension BitMatrix
// that data mask maskIndex covers. Calling it twice with the same
// maskIndex restores the original matrix, since masking is its own
// inverse.
func UnmaskBitMatrix(bits *bitutil.BitMatrix, dimension int, maskIndex int) {
	mask := DataMasks[maskIndex]
	for i := 0; i < dimension; i++ {
		for j := 0; j < dimension; j++ {
			if mask(i, j) {
				bits.Flip(j, i)
			}
		}
	}
}
