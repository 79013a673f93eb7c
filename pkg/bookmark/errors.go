package bookmark

import "errors"

// Errors.
var (
	// ErrNoSecret is returned when the signing secret is empty.
	// It is a configuration problem, not bad input, and is never folded into the invalid flag.
	ErrNoSecret = errors.New("bookmark: secret required")

	// ErrMalformed means the token is not two non-empty base64 segments joined by a dot.
	ErrMalformed = errors.New("bookmark: malformed token")

	// ErrSignature means the MAC does not match the payload under the given secret.
	ErrSignature = errors.New("bookmark: invalid signature")

	// ErrPayload means the signed bytes are not a payload with an ids array.
	ErrPayload = errors.New("bookmark: invalid payload")
)
