package decoder

// DetectionResultRowIndicatorColumn is a specialized DetectionResultColumn
// for the left or right row indicator columns, which encode barcode
// metadata (column count, row count, EC level) rather than data.
type DetectionResultRowIndicatorColumn struct {
	*DetectionResultColumn
	isLeft bool
}

// NewDetectionResultRowIndicatorColumn creates a new row indicator column.
func NewDetectionResultRowIndicatorColumn(boundingBox *BoundingBox, isLeft bool) *DetectionResultRowIndicatorColumn {
	return &DetectionResultRowIndicatorColumn{
		DetectionResultColumn: NewDetectionResultColumn(boundingBox),
		isLeft:                isLeft,
	}
}

func (col *DetectionResultRowIndicatorColumn) setRowNumbers() {
	for _, codeword := range col.Codewords() {
		if codeword != nil {
			codeword.SetRowNumberAsRowIndicatorColumn()
		}
	}
}

// codewordRowRange returns the first and last codeword index covered by
// this indicator's own side of the bounding box (left or right edge).
func (col *DetectionResultRowIndicatorColumn) codewordRowRange() (firstRow, lastRow int) {
	boundingBox := col.GetBoundingBox()
	var topY, bottomY float64
	if col.isLeft {
		topY = boundingBox.TopLeft().Y
		bottomY = boundingBox.BottomLeft().Y
	} else {
		topY = boundingBox.TopRight().Y
		bottomY = boundingBox.BottomRight().Y
	}
	return col.ImageRowToCodewordIndex(int(topY)), col.ImageRowToCodewordIndex(int(bottomY))
}

// AdjustCompleteIndicatorColumnRowNumbers adjusts the row numbers of all
// codewords in this indicator column using the barcode metadata.
func (col *DetectionResultRowIndicatorColumn) AdjustCompleteIndicatorColumnRowNumbers(barcodeMetadata *BarcodeMetadata) {
	codewords := col.Codewords()
	col.setRowNumbers()
	col.removeIncorrectCodewords(codewords, barcodeMetadata)
	firstRow, lastRow := col.codewordRowRange()

	barcodeRow := -1
	maxRowHeight := 1
	currentRowHeight := 0
	for codewordsRow := firstRow; codewordsRow < lastRow; codewordsRow++ {
		codeword := codewords[codewordsRow]
		if codeword == nil {
			continue
		}
		rowDifference := codeword.RowNumber() - barcodeRow

		switch {
		case rowDifference == 0:
			currentRowHeight++
		case rowDifference == 1:
			if currentRowHeight > maxRowHeight {
				maxRowHeight = currentRowHeight
			}
			currentRowHeight = 1
			barcodeRow = codeword.RowNumber()
		case rowDifference < 0 || codeword.RowNumber() >= barcodeMetadata.RowCount() || rowDifference > codewordsRow:
			codewords[codewordsRow] = nil
		default:
			checkedRows := rowDifference
			if maxRowHeight > 2 {
				checkedRows = (maxRowHeight - 2) * rowDifference
			}
			closePreviousCodewordFound := checkedRows >= codewordsRow
			for i := 1; i <= checkedRows && !closePreviousCodewordFound; i++ {
				closePreviousCodewordFound = codewords[codewordsRow-i] != nil
			}
			if closePreviousCodewordFound {
				codewords[codewordsRow] = nil
			} else {
				barcodeRow = codeword.RowNumber()
				currentRowHeight = 1
			}
		}
	}
}

// RowHeights returns the height (in image rows) of each barcode row, or nil
// if barcode metadata cannot be determined.
func (col *DetectionResultRowIndicatorColumn) RowHeights() []int {
	barcodeMetadata := col.GetBarcodeMetadata()
	if barcodeMetadata == nil {
		return nil
	}
	col.adjustIncompleteIndicatorColumnRowNumbers(barcodeMetadata)
	result := make([]int, barcodeMetadata.RowCount())
	for _, codeword := range col.Codewords() {
		if codeword == nil {
			continue
		}
		if rowNumber := codeword.RowNumber(); rowNumber < len(result) {
			result[rowNumber]++
		}
	}
	return result
}

func (col *DetectionResultRowIndicatorColumn) adjustIncompleteIndicatorColumnRowNumbers(barcodeMetadata *BarcodeMetadata) {
	firstRow, lastRow := col.codewordRowRange()
	codewords := col.Codewords()

	barcodeRow := -1
	maxRowHeight := 1
	currentRowHeight := 0
	for codewordsRow := firstRow; codewordsRow < lastRow; codewordsRow++ {
		codeword := codewords[codewordsRow]
		if codeword == nil {
			continue
		}
		codeword.SetRowNumberAsRowIndicatorColumn()
		rowDifference := codeword.RowNumber() - barcodeRow

		switch {
		case rowDifference == 0:
			currentRowHeight++
		case rowDifference == 1:
			if currentRowHeight > maxRowHeight {
				maxRowHeight = currentRowHeight
			}
			currentRowHeight = 1
			barcodeRow = codeword.RowNumber()
		case codeword.RowNumber() >= barcodeMetadata.RowCount():
			codewords[codewordsRow] = nil
		default:
			barcodeRow = codeword.RowNumber()
			currentRowHeight = 1
		}
	}
}

// GetBarcodeMetadata extracts barcode metadata from this row indicator
// column's codewords, or nil if the metadata cannot be determined.
func (col *DetectionResultRowIndicatorColumn) GetBarcodeMetadata() *BarcodeMetadata {
	codewords := col.Codewords()
	columnCount := NewBarcodeValue()
	rowCountUpperPart := NewBarcodeValue()
	rowCountLowerPart := NewBarcodeValue()
	ecLevel := NewBarcodeValue()

	for _, codeword := range codewords {
		if codeword == nil {
			continue
		}
		codeword.SetRowNumberAsRowIndicatorColumn()
		col.tallyRowIndicatorValue(codeword, columnCount, rowCountUpperPart, rowCountLowerPart, ecLevel)
	}

	columnCountValues := columnCount.Value()
	upperPartValues := rowCountUpperPart.Value()
	lowerPartValues := rowCountLowerPart.Value()
	ecLevelValues := ecLevel.Value()
	if len(columnCountValues) == 0 || len(upperPartValues) == 0 ||
		len(lowerPartValues) == 0 || len(ecLevelValues) == 0 ||
		columnCountValues[0] < 1 ||
		upperPartValues[0]+lowerPartValues[0] < minRowsInBarcode ||
		upperPartValues[0]+lowerPartValues[0] > maxRowsInBarcode {
		return nil
	}

	barcodeMetadata := NewBarcodeMetadata(columnCountValues[0], upperPartValues[0], lowerPartValues[0], ecLevelValues[0])
	col.removeIncorrectCodewords(codewords, barcodeMetadata)
	return barcodeMetadata
}

// tallyRowIndicatorValue records codeword's contribution to one of the
// three metadata fields, determined by its row number modulo 3.
func (col *DetectionResultRowIndicatorColumn) tallyRowIndicatorValue(codeword *Codeword, columnCount, rowCountUpperPart, rowCountLowerPart, ecLevel *BarcodeValue) {
	rowIndicatorValue := codeword.Value() % 30
	codewordRowNumber := codeword.RowNumber()
	if !col.isLeft {
		codewordRowNumber += 2
	}
	switch codewordRowNumber % 3 {
	case 0:
		rowCountUpperPart.SetValue(rowIndicatorValue*3 + 1)
	case 1:
		ecLevel.SetValue(rowIndicatorValue / 3)
		rowCountLowerPart.SetValue(rowIndicatorValue % 3)
	case 2:
		columnCount.SetValue(rowIndicatorValue + 1)
	}
}

func (col *DetectionResultRowIndicatorColumn) removeIncorrectCodewords(codewords []*Codeword, barcodeMetadata *BarcodeMetadata) {
	for codewordRow, codeword := range codewords {
		if codeword == nil {
			continue
		}
		rowIndicatorValue := codeword.Value() % 30
		codewordRowNumber := codeword.RowNumber()
		if codewordRowNumber > barcodeMetadata.RowCount() {
			codewords[codewordRow] = nil
			continue
		}
		if !col.isLeft {
			codewordRowNumber += 2
		}
		switch codewordRowNumber % 3 {
		case 0:
			if rowIndicatorValue*3+1 != barcodeMetadata.RowCountUpperPart() {
				codewords[codewordRow] = nil
			}
		case 1:
			if rowIndicatorValue/3 != barcodeMetadata.ErrorCorrectionLevel() ||
				rowIndicatorValue%3 != barcodeMetadata.RowCountLowerPart() {
				codewords[codewordRow] = nil
			}
		case 2:
			if rowIndicatorValue+1 != barcodeMetadata.ColumnCount() {
				codewords[codewordRow] = nil
			}
		}
	}
}

// IsLeft reports whether this is a left row indicator column.
func (col *DetectionResultRowIndicatorColumn) IsLeft() bool {
	return col.isLeft
}

func (col *DetectionResultRowIndicatorColumn) String() string {
	isLeftStr := "false"
	if col.isLeft {
		isLeftStr = "true"
	}
	return "IsLeft: " + isLeftStr + "\n" + col.DetectionResultColumn.String()
}
