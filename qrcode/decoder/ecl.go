// Package decoder implements the QR code symbol model: versions, format
// information, data-block de-interleaving, and bit-stream interpretation.
package decoder

// ErrorCorrectionLevel is one of a QR code's four error correction
// strengths.
type ErrorCorrectionLevel int

const (
	ECLevelL ErrorCorrectionLevel = iota // recovers ~7% of codewords
	ECLevelM                             // recovers ~15% of codewords
	ECLevelQ                             // recovers ~25% of codewords
	ECLevelH                             // recovers ~30% of codewords
)

type eclInfo struct {
	bits int
	name string
}

// eclTable is indexed by ErrorCorrectionLevel's ordinal, not by its wire
// encoding: the 2-bit format-info encoding intentionally doesn't follow
// L,M,Q,H order (see bitsToLevel below).
var eclTable = [...]eclInfo{
	ECLevelL: {0x01, "L"},
	ECLevelM: {0x00, "M"},
	ECLevelQ: {0x03, "Q"},
	ECLevelH: {0x02, "H"},
}

// bitsToLevel maps a format-info 2-bit field to the level it encodes.
var bitsToLevel = [4]ErrorCorrectionLevel{ECLevelM, ECLevelL, ECLevelH, ECLevelQ}

// Bits returns this level's 2-bit format-info encoding.
func (ecl ErrorCorrectionLevel) Bits() int {
	return eclTable[ecl].bits
}

// Ordinal returns the level's position, L=0 through H=3.
func (ecl ErrorCorrectionLevel) Ordinal() int {
	return int(ecl)
}

// String returns the level's one-letter name, or "?" if out of range.
func (ecl ErrorCorrectionLevel) String() string {
	if ecl < 0 || int(ecl) >= len(eclTable) {
		return "?"
	}
	return eclTable[ecl].name
}

// ECLevelForBits decodes a format-info 2-bit field into its level.
func ECLevelForBits(bits int) (ErrorCorrectionLevel, error) {
	if bits < 0 || bits >= len(bitsToLevel) {
		return 0, errInvalidECLevel
	}
	return bitsToLevel[bits], nil
}
