package screening

import "errors"

// ErrNotFound indicates the requested screening does not exist.
var ErrNotFound = errors.New("screening not found")
