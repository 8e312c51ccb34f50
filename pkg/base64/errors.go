package base64

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is matched by every error the validating decoder
// returns.
var ErrInvalidEncoding = errors.New("invalid encoding")

var (
	ErrInvalidLength    = fmt.Errorf("%w: length is not a multiple of 4", ErrInvalidEncoding)
	ErrInvalidCharacter = fmt.Errorf("%w: character outside the alphabet", ErrInvalidEncoding)
	ErrMisplacedPadding = fmt.Errorf("%w: padding before the end of input", ErrInvalidEncoding)
)

// ErrCorruptInput reports where in the input validation failed.
type ErrCorruptInput struct {
	Offset int
	Inner  error
}

func (e *ErrCorruptInput) Error() string {
	return fmt.Sprintf("base64: %v at offset %d", e.Inner, e.Offset)
}

func (e *ErrCorruptInput) Unwrap() error {
	return e.Inner
}

func NewCorruptInputError(offset int, inner error) *ErrCorruptInput {
	return &ErrCorruptInput{Offset: offset, Inner: inner}
}
