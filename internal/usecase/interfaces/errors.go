package interfaces

import "errors"

// ErrAlreadyExists is returned by Create when the document key is taken.
var ErrAlreadyExists = errors.New("document already exists")
