package pack

import "errors"

// ErrInvalidRowWidth is returned when a row width is not positive.
var ErrInvalidRowWidth = errors.New("pack: row width must be positive")
