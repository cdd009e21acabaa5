package symdecode

// Hints carries caller-supplied decode options that are common across
// symbologies; a zero-value Hints means "use defaults." No decoder in this
// module takes a Hints value: the QR decoder takes its character set as a
// plain string argument, and no decoder reads ShapeHint or PureBarcode.
type Hints struct {
	// CharacterSet, when non-empty, names the byte-mode character set
	// explicitly (e.g. "UTF-8", "ISO-8859-1", "Shift_JIS") instead of
	// guessing it. See charset.DecodeBytes for the set of names understood.
	CharacterSet string

	// ShapeHint constrains which Data Matrix symbol shapes to consider.
	// Values correspond to datamatrix/decoder.ShapeHintForceNone (0),
	// ShapeHintForceSquare (1), and ShapeHintForceRectangle (2).
	ShapeHint int

	// PureBarcode indicates the input matrix is known to contain nothing
	// but the symbol itself, with no surrounding margin to search.
	PureBarcode bool
}
