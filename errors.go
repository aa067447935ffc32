package glossa

import "errors"

var (
	ErrUnreadable       = errors.New("glossa: translation file cannot be read")
	ErrMalformed        = errors.New("glossa: malformed translation file")
	ErrDirectoryMissing = errors.New("glossa: translations directory not found")
	ErrEmptyLocale      = errors.New("glossa: locale cannot be empty")
	ErrEmptyNamespace   = errors.New("glossa: namespace cannot be empty")
	ErrEmptySeparator   = errors.New("glossa: separator cannot be empty")
)
