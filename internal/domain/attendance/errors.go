package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrNoSnapshot     = errors.New("no attendance data loaded")
)
