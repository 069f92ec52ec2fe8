package model

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap one of these so callers can classify them with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrNotInCollection = errors.New("not found in collection")
	ErrForbidden       = errors.New("forbidden")
)

var ErrSelfSubscription = fmt.Errorf("%w: cannot subscribe to yourself", ErrValidation)
