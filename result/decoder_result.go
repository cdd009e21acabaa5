// Package result holds the types that carry a decode outcome out of a
// symbology decoder and back to the caller. Every 2D decoder package
// (qrcode/decoder, datamatrix/decoder, aztec/decoder, maxicode/decoder,
// pdf417/decoder) produces one of these; none of them hold a reference to
// the BitMatrix they decoded, so a DecoderResult is safe to retain after
// the matrix it came from is discarded.
package result

// MirrorMetadata is stashed in DecoderResult.Other when a symbol was only
// readable after the decoder transposed it across its main diagonal and
// retried. See the orchestration note on Decode in qrcode/decoder.
type MirrorMetadata struct {
	Mirrored bool
}

// DecoderResult encapsulates the result of decoding a matrix of bits into
// a mode-segmented payload.
type DecoderResult struct {
	RawBytes     []byte
	NumBits      int
	Text         string
	ByteSegments [][]byte
	ECLevel      string

	// ErrorsCorrected is the number of codewords the Reed-Solomon pass
	// had to repair across every data block. Erasures is the number of
	// erasure positions handed to the Reed-Solomon pass; only the PDF417
	// decoder sets it, and every other decoder leaves it 0.
	ErrorsCorrected int
	Erasures        int

	// Other carries symbology-specific, out-of-band signals that don't
	// fit the fields above. Currently only *MirrorMetadata.
	Other interface{}

	StructuredAppendParity         int
	StructuredAppendSequenceNumber int
	SymbologyModifier              int
}

// NewDecoderResult creates a DecoderResult with the basic fields. Structured
// append fields default to -1 (absent); see HasStructuredAppend.
func NewDecoderResult(rawBytes []byte, text string, byteSegments [][]byte, ecLevel string) *DecoderResult {
	numBits := 0
	if rawBytes != nil {
		numBits = 8 * len(rawBytes)
	}
	return &DecoderResult{
		RawBytes:                       rawBytes,
		NumBits:                        numBits,
		Text:                           text,
		ByteSegments:                   byteSegments,
		ECLevel:                        ecLevel,
		StructuredAppendParity:         -1,
		StructuredAppendSequenceNumber: -1,
	}
}

// NewDecoderResultFull creates a DecoderResult with structured-append and
// symbology-modifier fields populated.
func NewDecoderResultFull(rawBytes []byte, text string, byteSegments [][]byte,
	ecLevel string, saSequence, saParity, symbologyModifier int) *DecoderResult {
	numBits := 0
	if rawBytes != nil {
		numBits = 8 * len(rawBytes)
	}
	return &DecoderResult{
		RawBytes:                       rawBytes,
		NumBits:                        numBits,
		Text:                           text,
		ByteSegments:                   byteSegments,
		ECLevel:                        ecLevel,
		StructuredAppendParity:         saParity,
		StructuredAppendSequenceNumber: saSequence,
		SymbologyModifier:              symbologyModifier,
	}
}

// HasStructuredAppend returns true if this result has structured append info.
func (d *DecoderResult) HasStructuredAppend() bool {
	return d.StructuredAppendParity >= 0 && d.StructuredAppendSequenceNumber >= 0
}

// SetMirrored records that this result was only obtained by mirroring the
// input matrix across its main diagonal before the second decode attempt.
func (d *DecoderResult) SetMirrored(mirrored bool) {
	d.Other = &MirrorMetadata{Mirrored: mirrored}
}

// Mirrored reports whether this result carries mirror metadata and, if so,
// whether the mirrored pass is what produced it.
func (d *DecoderResult) Mirrored() bool {
	mm, ok := d.Other.(*MirrorMetadata)
	return ok && mm.Mirrored
}
