package domain

import "errors"

var (
	ErrRunNotFound       = errors.New("run not found")
	ErrInvalidCSVFormat  = errors.New("invalid CSV format")
	ErrProcessingFailed  = errors.New("processing failed")
	ErrDuplicateEvent    = errors.New("duplicate event")
	ErrInvalidPageParams = errors.New("invalid page parameters")
)
