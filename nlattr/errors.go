package nlattr

import "errors"

// Error conditions.
var (
	ErrBufferOverflow = errors.New("message buffer overflow")
	ErrTruncated      = errors.New("truncated attribute block")
)
