package errors

import "errors"

// Analysis errors
var (
	ErrTranscriptEmpty   = errors.New("transcript is empty")
	ErrUnsupportedUpload = errors.New("unsupported upload")
	ErrArchiveFailed     = errors.New("recording archive failed")
)
