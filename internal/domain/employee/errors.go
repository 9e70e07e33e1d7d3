package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoEmployeeChosen = errors.New("no employee selected")
)
