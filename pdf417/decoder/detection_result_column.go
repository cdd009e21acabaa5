package decoder

import "fmt"

const maxNearbyDistance = 5

// DetectionResultColumn is one column of codewords located during PDF417
// detection, indexed by image row within its bounding box.
type DetectionResultColumn struct {
	boundingBox *BoundingBox
	codewords   []*Codeword
}

// NewDetectionResultColumn creates an empty column spanning boundingBox.
func NewDetectionResultColumn(boundingBox *BoundingBox) *DetectionResultColumn {
	return &DetectionResultColumn{
		boundingBox: CopyBoundingBox(boundingBox),
		codewords:   make([]*Codeword, boundingBox.MaxY()-boundingBox.MinY()+1),
	}
}

// CodewordNearby returns the codeword at imageRow, or the nearest one fewer
// than maxNearbyDistance rows above or below if that row is empty.
func (col *DetectionResultColumn) CodewordNearby(imageRow int) *Codeword {
	if codeword := col.Codeword(imageRow); codeword != nil {
		return codeword
	}
	index := col.ImageRowToCodewordIndex(imageRow)
	for distance := 1; distance < maxNearbyDistance; distance++ {
		if codeword := col.codewordAt(index - distance); codeword != nil {
			return codeword
		}
		if codeword := col.codewordAt(index + distance); codeword != nil {
			return codeword
		}
	}
	return nil
}

func (col *DetectionResultColumn) codewordAt(index int) *Codeword {
	if index < 0 || index >= len(col.codewords) {
		return nil
	}
	return col.codewords[index]
}

// ImageRowToCodewordIndex converts an image row to a codeword index in this column.
func (col *DetectionResultColumn) ImageRowToCodewordIndex(imageRow int) int {
	return imageRow - col.boundingBox.MinY()
}

// SetCodeword sets the codeword at the given image row.
func (col *DetectionResultColumn) SetCodeword(imageRow int, codeword *Codeword) {
	col.codewords[col.ImageRowToCodewordIndex(imageRow)] = codeword
}

// Codeword returns the codeword at the given image row.
func (col *DetectionResultColumn) Codeword(imageRow int) *Codeword {
	return col.codewords[col.ImageRowToCodewordIndex(imageRow)]
}

// GetBoundingBox returns the bounding box of this column.
func (col *DetectionResultColumn) GetBoundingBox() *BoundingBox {
	return col.boundingBox
}

// Codewords returns the codeword slice for this column, one entry per image row.
func (col *DetectionResultColumn) Codewords() []*Codeword {
	return col.codewords
}

func (col *DetectionResultColumn) String() string {
	result := ""
	for row, codeword := range col.codewords {
		if codeword == nil {
			result += fmt.Sprintf("%3d:    |   \n", row)
		} else {
			result += fmt.Sprintf("%3d: %3d|%3d\n", row, codeword.RowNumber(), codeword.Value())
		}
	}
	return result
}
