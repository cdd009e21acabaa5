package decoder

import "fmt"

const adjustRowNumberSkip = 2

// DetectionResult holds the complete detection result of a PDF417 barcode,
// including all column detection results and barcode metadata.
type DetectionResult struct {
	barcodeMetadata        *BarcodeMetadata
	detectionResultColumns []DetectionResultColumnI
	boundingBox            *BoundingBox
	barcodeColumnCount     int
}

// DetectionResultColumnI lets regular columns and row indicator columns be
// stored together in DetectionResult's column slice.
type DetectionResultColumnI interface {
	CodewordNearby(imageRow int) *Codeword
	ImageRowToCodewordIndex(imageRow int) int
	SetCodeword(imageRow int, codeword *Codeword)
	Codeword(imageRow int) *Codeword
	GetBoundingBox() *BoundingBox
	Codewords() []*Codeword
	String() string
}

// NewDetectionResult creates a DetectionResult with barcodeColumnCount+2
// empty column slots (data columns plus the left/right row indicators).
func NewDetectionResult(barcodeMetadata *BarcodeMetadata, boundingBox *BoundingBox) *DetectionResult {
	return &DetectionResult{
		barcodeMetadata:        barcodeMetadata,
		barcodeColumnCount:     barcodeMetadata.ColumnCount(),
		boundingBox:            boundingBox,
		detectionResultColumns: make([]DetectionResultColumnI, barcodeMetadata.ColumnCount()+2),
	}
}

// leftIndicatorIndex and rightIndicatorIndex locate the row indicator
// columns within detectionResultColumns.
func (dr *DetectionResult) leftIndicatorIndex() int  { return 0 }
func (dr *DetectionResult) rightIndicatorIndex() int { return dr.barcodeColumnCount + 1 }

// GetDetectionResultColumns finalizes row indicator row numbers, then
// repeatedly propagates row numbers from indicator columns into the data
// columns until a pass stops making progress.
func (dr *DetectionResult) GetDetectionResultColumns() []DetectionResultColumnI {
	dr.adjustIndicatorColumnRowNumbers(dr.detectionResultColumns[dr.leftIndicatorIndex()])
	dr.adjustIndicatorColumnRowNumbers(dr.detectionResultColumns[dr.rightIndicatorIndex()])

	unadjusted := maxCodewordsInBarcode
	for {
		previous := unadjusted
		unadjusted = dr.adjustRowNumbers()
		if unadjusted <= 0 || unadjusted >= previous {
			break
		}
	}
	return dr.detectionResultColumns
}

func (dr *DetectionResult) adjustIndicatorColumnRowNumbers(col DetectionResultColumnI) {
	if ric, ok := col.(*DetectionResultRowIndicatorColumn); ok && ric != nil {
		ric.AdjustCompleteIndicatorColumnRowNumbers(dr.barcodeMetadata)
	}
}

func (dr *DetectionResult) adjustRowNumbers() int {
	unadjustedCount := dr.adjustRowNumbersByRow()
	if unadjustedCount == 0 {
		return 0
	}
	for barcodeColumn := 1; barcodeColumn <= dr.barcodeColumnCount; barcodeColumn++ {
		codewords := dr.detectionResultColumns[barcodeColumn].Codewords()
		for codewordsRow, codeword := range codewords {
			if codeword != nil && !codeword.HasValidRowNumber() {
				dr.adjustRowNumbersSingle(barcodeColumn, codewordsRow, codewords)
			}
		}
	}
	return unadjustedCount
}

func (dr *DetectionResult) adjustRowNumbersByRow() int {
	dr.adjustRowNumbersFromBothRI()
	unadjustedCount := dr.adjustRowNumbersFromIndicator(dr.leftIndicatorIndex(), lriColumnOrder(dr.barcodeColumnCount))
	return unadjustedCount + dr.adjustRowNumbersFromIndicator(dr.rightIndicatorIndex(), rriColumnOrder(dr.barcodeColumnCount))
}

func (dr *DetectionResult) adjustRowNumbersFromBothRI() {
	left := dr.detectionResultColumns[dr.leftIndicatorIndex()]
	right := dr.detectionResultColumns[dr.rightIndicatorIndex()]
	if left == nil || right == nil {
		return
	}
	lriCodewords := left.Codewords()
	rriCodewords := right.Codewords()
	for codewordsRow := 0; codewordsRow < len(lriCodewords); codewordsRow++ {
		if lriCodewords[codewordsRow] == nil || rriCodewords[codewordsRow] == nil ||
			lriCodewords[codewordsRow].RowNumber() != rriCodewords[codewordsRow].RowNumber() {
			continue
		}
		rowNumber := lriCodewords[codewordsRow].RowNumber()
		for barcodeColumn := 1; barcodeColumn <= dr.barcodeColumnCount; barcodeColumn++ {
			codeword := dr.detectionResultColumns[barcodeColumn].Codewords()[codewordsRow]
			if codeword == nil {
				continue
			}
			codeword.SetRowNumber(rowNumber)
			if !codeword.HasValidRowNumber() {
				dr.detectionResultColumns[barcodeColumn].Codewords()[codewordsRow] = nil
			}
		}
	}
}

// lriColumnOrder and rriColumnOrder are the data-column visit orders used
// to propagate row numbers outward from the left/right indicator columns.
// rriColumnOrder includes the indicator's own index first, matching how the
// original top-down walk reached it before stepping into the data columns.
func lriColumnOrder(barcodeColumnCount int) []int {
	cols := make([]int, barcodeColumnCount)
	for i := range cols {
		cols[i] = i + 1
	}
	return cols
}

func rriColumnOrder(barcodeColumnCount int) []int {
	cols := make([]int, barcodeColumnCount+1)
	for i := range cols {
		cols[i] = barcodeColumnCount + 1 - i
	}
	return cols
}

// adjustRowNumbersFromIndicator walks indicatorIndex's codewords row by
// row, using each as a trusted row number to assign to nearby data-column
// codewords in columnOrder, stopping early on a row once too many
// consecutive columns disagree.
func (dr *DetectionResult) adjustRowNumbersFromIndicator(indicatorIndex int, columnOrder []int) int {
	indicator := dr.detectionResultColumns[indicatorIndex]
	if indicator == nil {
		return 0
	}
	unadjustedCount := 0
	codewords := indicator.Codewords()
	for codewordsRow := 0; codewordsRow < len(codewords); codewordsRow++ {
		if codewords[codewordsRow] == nil {
			continue
		}
		rowIndicatorRowNumber := codewords[codewordsRow].RowNumber()
		invalidRowCounts := 0
		for _, barcodeColumn := range columnOrder {
			if invalidRowCounts >= adjustRowNumberSkip {
				break
			}
			codeword := dr.detectionResultColumns[barcodeColumn].Codewords()[codewordsRow]
			if codeword == nil {
				continue
			}
			invalidRowCounts = adjustRowNumberIfValid(rowIndicatorRowNumber, invalidRowCounts, codeword)
			if !codeword.HasValidRowNumber() {
				unadjustedCount++
			}
		}
	}
	return unadjustedCount
}

func adjustRowNumberIfValid(rowIndicatorRowNumber, invalidRowCounts int, codeword *Codeword) int {
	if codeword == nil {
		return invalidRowCounts
	}
	if !codeword.HasValidRowNumber() {
		if codeword.IsValidRowNumber(rowIndicatorRowNumber) {
			codeword.SetRowNumber(rowIndicatorRowNumber)
			invalidRowCounts = 0
		} else {
			invalidRowCounts++
		}
	}
	return invalidRowCounts
}

func (dr *DetectionResult) adjustRowNumbersSingle(barcodeColumn, codewordsRow int, codewords []*Codeword) {
	codeword := codewords[codewordsRow]
	previousColumnCodewords := dr.detectionResultColumns[barcodeColumn-1].Codewords()
	nextColumnCodewords := previousColumnCodewords
	if dr.detectionResultColumns[barcodeColumn+1] != nil {
		nextColumnCodewords = dr.detectionResultColumns[barcodeColumn+1].Codewords()
	}

	otherCodewords := make([]*Codeword, 14)

	otherCodewords[2] = previousColumnCodewords[codewordsRow]
	otherCodewords[3] = nextColumnCodewords[codewordsRow]

	if codewordsRow > 0 {
		otherCodewords[0] = codewords[codewordsRow-1]
		otherCodewords[4] = previousColumnCodewords[codewordsRow-1]
		otherCodewords[5] = nextColumnCodewords[codewordsRow-1]
	}
	if codewordsRow > 1 {
		otherCodewords[8] = codewords[codewordsRow-2]
		otherCodewords[10] = previousColumnCodewords[codewordsRow-2]
		otherCodewords[11] = nextColumnCodewords[codewordsRow-2]
	}
	if codewordsRow < len(codewords)-1 {
		otherCodewords[1] = codewords[codewordsRow+1]
		otherCodewords[6] = previousColumnCodewords[codewordsRow+1]
		otherCodewords[7] = nextColumnCodewords[codewordsRow+1]
	}
	if codewordsRow < len(codewords)-2 {
		otherCodewords[9] = codewords[codewordsRow+2]
		otherCodewords[12] = previousColumnCodewords[codewordsRow+2]
		otherCodewords[13] = nextColumnCodewords[codewordsRow+2]
	}
	for _, otherCodeword := range otherCodewords {
		if adjustRowNumber(codeword, otherCodeword) {
			return
		}
	}
}

func adjustRowNumber(codeword, otherCodeword *Codeword) bool {
	if otherCodeword == nil {
		return false
	}
	if otherCodeword.HasValidRowNumber() && otherCodeword.Bucket() == codeword.Bucket() {
		codeword.SetRowNumber(otherCodeword.RowNumber())
		return true
	}
	return false
}

// BarcodeColumnCount returns the number of data columns.
func (dr *DetectionResult) BarcodeColumnCount() int {
	return dr.barcodeColumnCount
}

// BarcodeRowCount returns the total number of rows.
func (dr *DetectionResult) BarcodeRowCount() int {
	return dr.barcodeMetadata.RowCount()
}

// BarcodeECLevel returns the error correction level.
func (dr *DetectionResult) BarcodeECLevel() int {
	return dr.barcodeMetadata.ErrorCorrectionLevel()
}

// SetBoundingBox sets the bounding box.
func (dr *DetectionResult) SetBoundingBox(boundingBox *BoundingBox) {
	dr.boundingBox = boundingBox
}

// GetBoundingBox returns the bounding box.
func (dr *DetectionResult) GetBoundingBox() *BoundingBox {
	return dr.boundingBox
}

// SetDetectionResultColumn sets the detection result column at the given index.
func (dr *DetectionResult) SetDetectionResultColumn(barcodeColumn int, col DetectionResultColumnI) {
	dr.detectionResultColumns[barcodeColumn] = col
}

// GetDetectionResultColumn returns the detection result column at the given index.
func (dr *DetectionResult) GetDetectionResultColumn(barcodeColumn int) DetectionResultColumnI {
	return dr.detectionResultColumns[barcodeColumn]
}

func (dr *DetectionResult) String() string {
	rowIndicatorColumn := dr.detectionResultColumns[dr.leftIndicatorIndex()]
	if rowIndicatorColumn == nil {
		rowIndicatorColumn = dr.detectionResultColumns[dr.rightIndicatorIndex()]
	}
	result := ""
	for codewordsRow := 0; codewordsRow < len(rowIndicatorColumn.Codewords()); codewordsRow++ {
		result += fmt.Sprintf("CW %3d:", codewordsRow)
		for barcodeColumn := 0; barcodeColumn < dr.barcodeColumnCount+2; barcodeColumn++ {
			col := dr.detectionResultColumns[barcodeColumn]
			if col == nil {
				result += "    |   "
				continue
			}
			codeword := col.Codewords()[codewordsRow]
			if codeword == nil {
				result += "    |   "
				continue
			}
			result += fmt.Sprintf(" %3d|%3d", codeword.RowNumber(), codeword.Value())
		}
		result += "\n"
	}
	return result
}
