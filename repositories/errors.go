package repositories

import "errors"

// ErrNotFound covers both genuinely missing records and records hidden by
// ownership scoping; callers cannot tell the two apart.
var ErrNotFound = errors.New("record not found")
