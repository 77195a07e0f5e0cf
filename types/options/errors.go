package options

import "errors"

// ErrEmpty is raised by MustGet on an empty option
var ErrEmpty = errors.New("option is empty")
