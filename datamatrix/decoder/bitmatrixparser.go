package decoder

import (
	"fmt"

	"github.com/joshgraham/symdecode/bitutil"
)

// ReadCodewords reads codewords from a Data Matrix bit matrix using the standard
// ECC-200 module placement algorithm.
//
// The input matrix is the full symbol, finder and alignment patterns
// included: its dimensions select the version, and the patterns are stripped
// here, re-assembling the data regions into the logical mapping matrix
// before the codeword extraction walk.
func ReadCodewords(matrix *bitutil.BitMatrix) ([]byte, *Version, error) {
	numRows := matrix.Height()
	numColumns := matrix.Width()

	version, err := GetVersionForDimensions(numRows, numColumns)
	if err != nil {
		return nil, nil, err
	}

	mappingBitMatrix := extractDataRegion(matrix, version)
	codewords, err := readMappingMatrix(mappingBitMatrix, mappingBitMatrix.Height(), mappingBitMatrix.Width(), version)
	if err != nil {
		return nil, nil, err
	}
	return codewords, version, nil
}

// extractDataRegion strips alignment and finder patterns, tiling whatever
// data regions remain together into the logical mapping matrix.
func extractDataRegion(bitMatrix *bitutil.BitMatrix, version *Version) *bitutil.BitMatrix {
	regionRows := version.DataRegionSizeRows()
	regionCols := version.DataRegionSizeColumns()
	numRegionRows := version.SymbolSizeRows() / (regionRows + 2)
	numRegionCols := version.SymbolSizeColumns() / (regionCols + 2)

	mapping := bitutil.NewBitMatrixWithSize(numRegionCols*regionCols, numRegionRows*regionRows)

	for regionRow := 0; regionRow < numRegionRows; regionRow++ {
		writeRowBase := regionRow * regionRows
		readRowBase := regionRow*(regionRows+2) + 1 // +1 skips the finder pattern row
		for regionCol := 0; regionCol < numRegionCols; regionCol++ {
			writeColBase := regionCol * regionCols
			readColBase := regionCol*(regionCols+2) + 1
			for i := 0; i < regionRows; i++ {
				for j := 0; j < regionCols; j++ {
					if bitMatrix.Get(readColBase+j, readRowBase+i) {
						mapping.Set(writeColBase+j, writeRowBase+i)
					}
				}
			}
		}
	}
	return mapping
}

// readMappingMatrix walks the mapping matrix in the ECC-200 diagonal
// ("Utah") pattern and extracts codewords, handling the four corner cases
// that arise when the diagonal walk runs off the matrix edges.
func readMappingMatrix(mappingBitMatrix *bitutil.BitMatrix, numRows, numColumns int, version *Version) ([]byte, error) {
	totalCodewords := version.TotalCodewords()
	result := make([]byte, totalCodewords)

	read := make([][]bool, numRows)
	for i := range read {
		read[i] = make([]bool, numColumns)
	}

	emit := func(b byte, codewordIndex int) int {
		if codewordIndex < totalCodewords {
			result[codewordIndex] = b
			codewordIndex++
		}
		return codewordIndex
	}

	codewordIndex := 0
	row := 4
	column := 0

	for {
		// Check the four corner cases first.
		if row == numRows && column == 0 {
			codewordIndex = emit(readCorner1(mappingBitMatrix, numRows, numColumns, read), codewordIndex)
			row -= 2
			column += 2
		}
		if row == numRows-2 && column == 0 && numColumns%4 != 0 {
			codewordIndex = emit(readCorner2(mappingBitMatrix, numRows, numColumns, read), codewordIndex)
			row -= 2
			column += 2
		}
		if row == numRows+4 && column == 2 && numColumns%8 == 0 {
			codewordIndex = emit(readCorner3(mappingBitMatrix, numRows, numColumns, read), codewordIndex)
			row -= 2
			column += 2
		}
		if row == numRows-2 && column == 0 && numColumns%8 == 4 {
			codewordIndex = emit(readCorner4(mappingBitMatrix, numRows, numColumns, read), codewordIndex)
			row -= 2
			column += 2
		}

		// Sweep upward-right (do-while: body runs first, bounds checked after step).
		for {
			if row >= 0 && row < numRows && column >= 0 && column < numColumns && !read[row][column] {
				codewordIndex = emit(readUtah(mappingBitMatrix, row, column, numRows, numColumns, read), codewordIndex)
			}
			row -= 2
			column += 2
			if !(row >= 0 && column < numColumns) {
				break
			}
		}
		row++
		column += 3

		// Sweep downward-left (do-while: body runs first, bounds checked after step).
		for {
			if row >= 0 && row < numRows && column >= 0 && column < numColumns && !read[row][column] {
				codewordIndex = emit(readUtah(mappingBitMatrix, row, column, numRows, numColumns, read), codewordIndex)
			}
			row += 2
			column -= 2
			if !(row < numRows && column >= 0) {
				break
			}
		}
		row += 3
		column++

		if row >= numRows && column >= numColumns {
			break
		}
	}

	if codewordIndex != totalCodewords {
		return nil, fmt.Errorf("datamatrix/decoder: expected %d codewords but got %d", totalCodewords, codewordIndex)
	}
	return result, nil
}

// readModule reads a single module from the mapping matrix, wrapping
// coordinates that run off an edge back onto the opposite side per the
// ECC-200 placement rules.
func readModule(mappingBitMatrix *bitutil.BitMatrix, row, column, numRows, numColumns int, read [][]bool) bool {
	if row < 0 {
		row += numRows
		column += 4 - ((numRows + 4) % 8)
	}
	if column < 0 {
		column += numColumns
		row += 4 - ((numColumns + 4) % 8)
	}
	if row >= numRows {
		row -= numRows
	}
	if column >= numColumns {
		column -= numColumns
	}
	read[row][column] = true
	return mappingBitMatrix.Get(column, row)
}

// relOffset is a (row, column) offset read relative to a diagonal sweep's
// current position.
type relOffset struct{ dr, dc int }

// utahOffsets is the 8-module "Utah" shape that every non-corner Data
// Matrix codeword is read from, most significant module first.
var utahOffsets = [8]relOffset{
	{-2, -2}, {-2, -1}, {-1, -2}, {-1, -1}, {-1, 0}, {0, -2}, {0, -1}, {0, 0},
}

// readUtah reads the 8-module Utah-shaped codeword anchored at (row, column).
func readUtah(mappingBitMatrix *bitutil.BitMatrix, row, column, numRows, numColumns int, read [][]bool) byte {
	return readByteAt(mappingBitMatrix, numRows, numColumns, read, utahOffsets, row, column)
}

// readByteAt reads 8 modules at base+offset, most significant bit first,
// matching the order every Utah/corner shape is specified in.
func readByteAt(mb *bitutil.BitMatrix, numRows, numColumns int, read [][]bool, offsets [8]relOffset, baseRow, baseCol int) byte {
	var b byte
	for _, o := range offsets {
		b <<= 1
		if readModule(mb, baseRow+o.dr, baseCol+o.dc, numRows, numColumns, read) {
			b |= 1
		}
	}
	return b
}

// cornerOffsets holds the 8 absolute (row, column) modules read for each of
// the four corner cases that the diagonal walk hits at the matrix edges.
// Each function below resolves its table against the matrix's actual
// dimensions and reads it with readByteAt.
type cornerOffsets func(numRows, numColumns int) [8]relOffset

func corner1Coords(numRows, numColumns int) [8]relOffset {
	return [8]relOffset{
		{numRows - 1, 0}, {numRows - 1, 1}, {numRows - 1, 2},
		{0, numColumns - 2}, {0, numColumns - 1},
		{1, numColumns - 1}, {2, numColumns - 1}, {3, numColumns - 1},
	}
}

func corner2Coords(numRows, numColumns int) [8]relOffset {
	return [8]relOffset{
		{numRows - 3, 0}, {numRows - 2, 0}, {numRows - 1, 0},
		{0, numColumns - 4}, {0, numColumns - 3}, {0, numColumns - 2}, {0, numColumns - 1},
		{1, numColumns - 1},
	}
}

func corner3Coords(numRows, numColumns int) [8]relOffset {
	return [8]relOffset{
		{numRows - 1, 0}, {numRows - 1, numColumns - 1},
		{0, numColumns - 3}, {0, numColumns - 2}, {0, numColumns - 1},
		{1, numColumns - 3}, {1, numColumns - 2}, {1, numColumns - 1},
	}
}

func corner4Coords(numRows, numColumns int) [8]relOffset {
	return [8]relOffset{
		{numRows - 3, 0}, {numRows - 2, 0}, {numRows - 1, 0},
		{0, numColumns - 2}, {0, numColumns - 1},
		{1, numColumns - 1}, {2, numColumns - 1}, {3, numColumns - 1},
	}
}

// readCornerN reads the Nth corner case's 8 modules, resolved as absolute
// coordinates so readByteAt's base offset of (0, 0) is a no-op.
func readCorner(mb *bitutil.BitMatrix, numRows, numColumns int, read [][]bool, coords cornerOffsets) byte {
	return readByteAt(mb, numRows, numColumns, read, coords(numRows, numColumns), 0, 0)
}

func readCorner1(mb *bitutil.BitMatrix, numRows, numColumns int, read [][]bool) byte {
	return readCorner(mb, numRows, numColumns, read, corner1Coords)
}

func readCorner2(mb *bitutil.BitMatrix, numRows, numColumns int, read [][]bool) byte {
	return readCorner(mb, numRows, numColumns, read, corner2Coords)
}

func readCorner3(mb *bitutil.BitMatrix, numRows, numColumns int, read [][]bool) byte {
	return readCorner(mb, numRows, numColumns, read, corner3Coords)
}

func readCorner4(mb *bitutil.BitMatrix, numRows, numColumns int, read [][]bool) byte {
	return readCorner(mb, numRows, numColumns, read, corner4Coords)
}
