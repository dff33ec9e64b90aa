package random

import "errors"

// ErrInvalidParam reports a distribution parameter set rejected at
// construction time. Callers wrap it into their own configuration
// error surface.
var ErrInvalidParam = errors.New("random: invalid distribution parameter")
