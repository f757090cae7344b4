package rmrk

import "errors"

var (
	ErrNotRemark          = errors.New("rmrk: not a protocol remark")
	ErrUnsupportedVersion = errors.New("rmrk: unsupported version")
	ErrMalformed          = errors.New("rmrk: malformed payload")
)
