// Package symdecode is the core decoding engine shared by the library's 2D
// symbologies (QR, Data Matrix, Aztec, MaxiCode, PDF417) and by the 1D
// pattern-matching primitive that row-based readers build on.
//
// The package itself is deliberately thin: it only holds the error
// vocabulary (this file) and decode options (hints.go) common to every
// symbology decoder. The decoders live one level down, in
// <symbology>/decoder, and each exposes a Decode entry point (a function or
// a Decoder method) that takes an already-binarized module grid (a
// *bitutil.BitMatrix; for Aztec, wrapped in a SymbolGeometry) and returns a
// *result.DecoderResult. Locating a symbol in an image, binarizing pixels
// into modules, and rendering/encoding a symbol are all handled upstream of
// this package and are not its concern.
package symdecode

import "errors"

// These are the five error conditions of the decoding pipeline. The
// symbology decoders return them directly or wrapped with fmt.Errorf's %w,
// except for the plain fmt.Errorf errors of the Data Matrix version,
// block-layout and codeword-count checks and of the MaxiCode mode and
// postcode checks, which wrap none of them.
var (
	// ErrNotFound means a structural prerequisite for decoding is simply
	// absent: no codewords could be read, or a matrix has no legal dimension.
	ErrNotFound = errors.New("symdecode: not found")

	// ErrFormat means the symbol's structure was parsed but is internally
	// inconsistent: an unrecognized mode indicator, a truncated bit stream,
	// a format or version word that no BCH/Golay correction can resolve.
	ErrFormat = errors.New("symdecode: format error")

	// ErrChecksum means Reed-Solomon could not correct the codeword stream
	// within its declared error-correction capacity. Internally this starts
	// life as reedsolomon.ErrReedSolomon and is translated to ErrChecksum at
	// the symbology decoder boundary (see e.g. qrcode/decoder.Decoder).
	ErrChecksum = errors.New("symdecode: checksum error")

	// ErrIllegalArgument means the caller passed something out of range or
	// otherwise malformed. datamatrix/decoder.Lookup returns it when no
	// symbol holds the requested codeword count. The bitutil matrix code does
	// not return it: out-of-bounds SetRegion arguments and ragged
	// ParseStringMatrix input panic with a message instead.
	ErrIllegalArgument = errors.New("symdecode: illegal argument")

	// ErrArithmetic names a Galois-field operation with no defined result
	// (inverse of zero, log of zero), which indicates a bug in the calling
	// code, never a property of the input data. No package returns it:
	// reedsolomon.GenericGF and pdf417/decoder.ModulusGF panic with a message
	// on those inputs instead.
	ErrArithmetic = errors.New("symdecode: arithmetic error")
)
