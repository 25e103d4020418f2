package repositories

import "errors"

// ErrNotFound is returned when an id matches no record. Handlers map it to a
// 404; any other repository error is a storage failure and maps to a 500.
var ErrNotFound = errors.New("record not found")
