package decoder

import (
	symdecode "github.com/joshgraham/symdecode"
	"github.com/joshgraham/symdecode/bitutil"
)

// BitMatrixParser extracts format info, version info, and codewords from a
// QR code's module grid, optionally reading it transposed (mirrored) for a
// second decode attempt when the first orientation fails.
type BitMatrixParser struct {
	bitMatrix        *bitutil.BitMatrix
	parsedVersion    *Version
	parsedFormatInfo *FormatInformation
	mirror           bool
}

// NewBitMatrixParser validates dimension and wraps bitMatrix for parsing.
func NewBitMatrixParser(bitMatrix *bitutil.BitMatrix) (*BitMatrixParser, error) {
	dimension := bitMatrix.Height()
	if dimension < 21 || (dimension&0x03) != 1 {
		return nil, symdecode.ErrFormat
	}
	return &BitMatrixParser{bitMatrix: bitMatrix}, nil
}

type coord struct{ i, j int }

// readBits folds copyBit over coords in order, most-significant bit first.
func (p *BitMatrixParser) readBits(coords []coord) int {
	value := 0
	for _, c := range coords {
		value = p.copyBit(c.i, c.j, value)
	}
	return value
}

func (p *BitMatrixParser) copyBit(i, j, bits int) int {
	var bit bool
	if p.mirror {
		bit = p.bitMatrix.Get(j, i)
	} else {
		bit = p.bitMatrix.Get(i, j)
	}
	if bit {
		return (bits << 1) | 0x1
	}
	return bits << 1
}

// topLeftFormatInfoCoords is the module sequence for one of the two
// redundant format-info readings, hugging the top-left finder pattern and
// skipping the timing-pattern module at (6, 8)/(8, 6).
func topLeftFormatInfoCoords() []coord {
	coords := make([]coord, 0, 15)
	for i := 0; i <= 5; i++ {
		coords = append(coords, coord{i, 8})
	}
	coords = append(coords, coord{7, 8}, coord{8, 8}, coord{8, 7})
	for j := 5; j >= 0; j-- {
		coords = append(coords, coord{8, j})
	}
	return coords
}

// splitFormatInfoCoords is the module sequence for the other format-info
// reading, split across the top-right and bottom-left finder patterns.
func splitFormatInfoCoords(dimension int) []coord {
	coords := make([]coord, 0, 15)
	for j := dimension - 1; j >= dimension-7; j-- {
		coords = append(coords, coord{8, j})
	}
	for i := dimension - 8; i < dimension; i++ {
		coords = append(coords, coord{i, 8})
	}
	return coords
}

// ReadFormatInformation reads and caches format info from its two redundant
// locations.
func (p *BitMatrixParser) ReadFormatInformation() (*FormatInformation, error) {
	if p.parsedFormatInfo != nil {
		return p.parsedFormatInfo, nil
	}

	dimension := p.bitMatrix.Height()
	bits1 := p.readBits(topLeftFormatInfoCoords())
	bits2 := p.readBits(splitFormatInfoCoords(dimension))

	p.parsedFormatInfo = DecodeFormatInformation(bits1, bits2)
	if p.parsedFormatInfo == nil {
		return nil, symdecode.ErrFormat
	}
	return p.parsedFormatInfo, nil
}

// topRightVersionCoords and bottomLeftVersionCoords are the two redundant
// 3x6 version-info module blocks for versions 7 and up.
func topRightVersionCoords(dimension int) []coord {
	ijMin := dimension - 11
	coords := make([]coord, 0, 18)
	for j := 5; j >= 0; j-- {
		for i := dimension - 9; i >= ijMin; i-- {
			coords = append(coords, coord{i, j})
		}
	}
	return coords
}

func bottomLeftVersionCoords(dimension int) []coord {
	ijMin := dimension - 11
	coords := make([]coord, 0, 18)
	for i := 5; i >= 0; i-- {
		for j := dimension - 9; j >= ijMin; j-- {
			coords = append(coords, coord{i, j})
		}
	}
	return coords
}

// ReadVersion reads and caches version info, falling back to the symbol's
// module dimension directly for versions 1-6, which carry no version field.
func (p *BitMatrixParser) ReadVersion() (*Version, error) {
	if p.parsedVersion != nil {
		return p.parsedVersion, nil
	}

	dimension := p.bitMatrix.Height()
	if provisional := (dimension - 17) / 4; provisional <= 6 {
		return GetVersionForNumber(provisional)
	}

	for _, coords := range [][]coord{topRightVersionCoords(dimension), bottomLeftVersionCoords(dimension)} {
		if v := DecodeVersionInformation(p.readBits(coords)); v != nil && v.DimensionForVersion() == dimension {
			p.parsedVersion = v
			return v, nil
		}
	}
	return nil, symdecode.ErrFormat
}

// ReadCodewords unmasks the matrix and walks its data modules in the
// standard QR zig-zag column order to recover the raw codeword stream.
func (p *BitMatrixParser) ReadCodewords() ([]byte, error) {
	formatInfo, err := p.ReadFormatInformation()
	if err != nil {
		return nil, err
	}
	version, err := p.ReadVersion()
	if err != nil {
		return nil, err
	}

	UnmaskBitMatrix(p.bitMatrix, p.bitMatrix.Height(), int(formatInfo.DataMask))
	functionPattern := version.BuildFunctionPattern()

	dimension := p.bitMatrix.Height()
	result := make([]byte, version.TotalCodewords)
	resultOffset := 0
	currentByte := 0
	bitsRead := 0
	readingUp := true

	for j := dimension - 1; j > 0; j -= 2 {
		if j == 6 {
			j--
		}
		for count := 0; count < dimension; count++ {
			i := count
			if readingUp {
				i = dimension - 1 - count
			}
			for col := 0; col < 2; col++ {
				if functionPattern.Get(j-col, i) {
					continue
				}
				bitsRead++
				currentByte <<= 1
				if p.bitMatrix.Get(j-col, i) {
					currentByte |= 1
				}
				if bitsRead == 8 {
					result[resultOffset] = byte(currentByte)
					resultOffset++
					bitsRead = 0
					currentByte = 0
				}
			}
		}
		readingUp = !readingUp
	}

	if resultOffset != version.TotalCodewords {
		return nil, symdecode.ErrFormat
	}
	return result, nil
}

// Remask re-applies the cached format info's data mask, undoing ReadCodewords's unmask.
func (p *BitMatrixParser) Remask() {
	if p.parsedFormatInfo == nil {
		return
	}
	UnmaskBitMatrix(p.bitMatrix, p.bitMatrix.Height(), int(p.parsedFormatInfo.DataMask))
}

// SetMirror resets cached format/version info and selects whether
// subsequent reads transpose the matrix, for a mirrored decode attempt.
func (p *BitMatrixParser) SetMirror(mirror bool) {
	p.parsedVersion = nil
	p.parsedFormatInfo = nil
	p.mirror = mirror
}

// Mirror transposes the bit matrix in place across its main diagonal.
func (p *BitMatrixParser) Mirror() {
	for x := 0; x < p.bitMatrix.Width(); x++ {
		for y := x + 1; y < p.bitMatrix.Height(); y++ {
			if p.bitMatrix.Get(x, y) != p.bitMatrix.Get(y, x) {
				p.bitMatrix.Flip(y, x)
				p.bitMatrix.Flip(x, y)
			}
		}
	}
}
