package interaction

import "errors"

// ErrInvalidContext indicates that a signature document could not be read,
// decoded, or did not match the signature schema.
var ErrInvalidContext = errors.New("interaction: invalid context")

// ErrEmptyContext indicates a context without lifelines or messages; no
// action can be generated from it.
var ErrEmptyContext = errors.New("interaction: context has no lifelines or messages")
