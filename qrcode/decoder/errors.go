package decoder

import (
	"errors"
	"fmt"
)

// ErrInvalidField is the sentinel every field-parsing error in this
// package wraps, so callers can test with errors.Is(err, ErrInvalidField)
// without caring which specific field was bad.
var ErrInvalidField = errors.New("qrcode/decoder: invalid field")

func invalidFieldError(field string) error {
	return fmt.Errorf("qrcode/decoder: invalid %s: %w", field, ErrInvalidField)
}

var (
	errInvalidECLevel = invalidFieldError("error correction level")
	errInvalidMode     = invalidFieldError("mode")
	errInvalidVersion  = invalidFieldError("version number")
)
