// errors/blob_errors.go
package errors

import "errors"

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidFileData  = errors.New("invalid file data")
	ErrDecryptionFailed = errors.New("ciphertext failed authentication")
	ErrKeyUnavailable   = errors.New("encryption key unavailable")
)
