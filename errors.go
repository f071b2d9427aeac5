package console

import "errors"

var (
	// ErrInvalidLevel indicates a severity outside the defined enumeration.
	ErrInvalidLevel = errors.New("level is not a defined severity")

	// ErrInvalidUTF8 indicates buffered writer output that is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("payload is not valid UTF-8")

	// ErrUnmarshalResponse wraps failures while decoding a host acknowledgement.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")
)
