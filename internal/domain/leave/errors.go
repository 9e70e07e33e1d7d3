package leave

import "errors"

// Leave domain errors
var (
	ErrQuotaNotFound   = errors.New("leave quota not found for year")
	ErrDuplicateRecord = errors.New("a record already exists for this date")
)
