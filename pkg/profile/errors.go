package profile

import "errors"

var (
	ErrParseCatalog    = errors.New("profile: failed to parse catalog")
	ErrReadCatalog     = errors.New("profile: failed to read catalog file")
	ErrEmptyCatalog    = errors.New("profile: catalog defines no profiles")
	ErrProfileNotFound = errors.New("profile: profile not found")
	ErrInvalidProfile  = errors.New("profile: invalid profile")
)
