package decoder

import "fmt"

const barcodeRowUnknown = -1

// Codeword is one decoded codeword of a PDF417 symbol, located by its pixel
// span and (once resolved) its row within the symbol.
type Codeword struct {
	startX    int
	endX      int
	bucket    int
	value     int
	rowNumber int
}

// NewCodeword creates a Codeword with no row number assigned yet.
func NewCodeword(startX, endX, bucket, value int) *Codeword {
	return &Codeword{
		startX:    startX,
		endX:      endX,
		bucket:    bucket,
		value:     value,
		rowNumber: barcodeRowUnknown,
	}
}

// bucketForRow is the cluster bucket a row indicator codeword in rowNumber
// must belong to.
func bucketForRow(rowNumber int) int {
	return (rowNumber % 3) * 3
}

// HasValidRowNumber reports whether the codeword's assigned row number is
// consistent with its bucket.
func (c *Codeword) HasValidRowNumber() bool {
	return c.IsValidRowNumber(c.rowNumber)
}

// IsValidRowNumber reports whether rowNumber is consistent with this
// codeword's bucket.
func (c *Codeword) IsValidRowNumber(rowNumber int) bool {
	return rowNumber != barcodeRowUnknown && c.bucket == bucketForRow(rowNumber)
}

// SetRowNumberAsRowIndicatorColumn derives the row number from this
// codeword's value and bucket, as used within row indicator columns.
func (c *Codeword) SetRowNumberAsRowIndicatorColumn() {
	c.rowNumber = (c.value/30)*3 + c.bucket/3
}

// Width is the codeword's span in pixels.
func (c *Codeword) Width() int { return c.endX - c.startX }

// StartX returns the starting x coordinate.
func (c *Codeword) StartX() int { return c.startX }

// EndX returns the ending x coordinate.
func (c *Codeword) EndX() int { return c.endX }

// Bucket returns the cluster bucket.
func (c *Codeword) Bucket() int { return c.bucket }

// Value returns the decoded codeword value.
func (c *Codeword) Value() int { return c.value }

// RowNumber returns the assigned row number, or barcodeRowUnknown if unset.
func (c *Codeword) RowNumber() int { return c.rowNumber }

// SetRowNumber assigns the row number for this codeword.
func (c *Codeword) SetRowNumber(rowNumber int) { c.rowNumber = rowNumber }

func (c *Codeword) String() string {
	return fmt.Sprintf("%d|%d", c.rowNumber, c.value)
}
