package decoder

const formatInfoMaskQR = 0x5412

// FormatInformation is a QR code's decoded format info: its error
// correction level and which of the 8 data masks was applied.
type FormatInformation struct {
	ECLevel  ErrorCorrectionLevel
	DataMask byte
}

// formatInfoTargets[i] is the masked bit pattern for format value
// formatInfoValues[i]; the two slices are parallel rather than a single
// slice of pairs so closestMatch can search the targets directly.
var formatInfoTargets = []int{
	0x5412, 0x5125, 0x5E7C, 0x5B4B, 0x45F9, 0x40CE, 0x4F97, 0x4AA0,
	0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976,
	0x1689, 0x13BE, 0x1CE7, 0x19D0, 0x0762, 0x0255, 0x0D0C, 0x083B,
	0x355F, 0x3068, 0x3F31, 0x3A06, 0x24B4, 0x2183, 0x2EDA, 0x2BED,
}

var formatInfoValues = []int{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
	0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F,
}

func newFormatInformation(formatInfo int) *FormatInformation {
	ecLevel, _ := ECLevelForBits((formatInfo >> 3) & 0x03)
	return &FormatInformation{
		ECLevel:  ecLevel,
		DataMask: byte(formatInfo & 0x07),
	}
}

// DecodeFormatInformation decodes format information given the two
// redundant masked readings of it, trying both the symbol's own masking
// and the fixed QR masking pattern.
func DecodeFormatInformation(maskedFormatInfo1, maskedFormatInfo2 int) *FormatInformation {
	if fi := doDecodeFormatInformation(maskedFormatInfo1, maskedFormatInfo2); fi != nil {
		return fi
	}
	return doDecodeFormatInformation(maskedFormatInfo1^formatInfoMaskQR, maskedFormatInfo2^formatInfoMaskQR)
}

func doDecodeFormatInformation(maskedFormatInfo1, maskedFormatInfo2 int) *FormatInformation {
	index, difference := closestMatch(formatInfoTargets, maskedFormatInfo1, maskedFormatInfo2)
	if difference > 3 {
		return nil
	}
	return newFormatInformation(formatInfoValues[index])
}
