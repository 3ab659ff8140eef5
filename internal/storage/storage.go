package storage

import "errors"

var ErrGenerationNotFound = errors.New("generation not found")
