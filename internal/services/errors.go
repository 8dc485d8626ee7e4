package services

import (
  "errors"
)

// ErrNotFound covers both a missing row and a row owned by a different
// user; callers cannot tell the two apart.
var ErrNotFound = errors.New("not found")
