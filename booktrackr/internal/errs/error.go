package errs

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrImportJSON  = errors.New("import: malformed json")
	ErrImportShape = errors.New("import: expected a json array of book objects")
	ErrTheme       = errors.New("theme must be dark or light")
)
