package mines

import "errors"

var (
	ErrUnknownDifficulty    = errors.New("unknown difficulty")
	ErrInvalidConfiguration = errors.New("invalid board configuration")
)
