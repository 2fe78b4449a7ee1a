package cubesim

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidMoveToken = errors.New("cubesim: invalid move token")

	// Lookup errors
	ErrUnknownPiece = errors.New("cubesim: unknown piece")
	ErrUnknownSlot  = errors.New("cubesim: unknown slot")

	// Initialization errors
	ErrMissingLookupTable = errors.New("cubesim: missing lookup table")
)

// InvalidMoveTokenError reports where tokenizing a move string failed.
// It unwraps to ErrInvalidMoveToken.
type InvalidMoveTokenError struct {
	Input string // the full string being tokenized
	Index int    // byte offset of the character no token matches at
}

func (e *InvalidMoveTokenError) Error() string {
	return fmt.Sprintf("cubesim: invalid move token at index %d of %q", e.Index, e.Input)
}

func (e *InvalidMoveTokenError) Unwrap() error {
	return ErrInvalidMoveToken
}
