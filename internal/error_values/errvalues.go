package errorvalues

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrPersistence = errors.New("persistence error")

	ErrActivityNotFound = errors.New("activity doesn't exist")
	ErrGoalNotFound     = errors.New("goal doesn't exist")
	ErrTaskNotFound     = errors.New("task doesn't exist")
	ErrWrongOwner       = errors.New("entity belongs to another owner")
	ErrGoalTypeMismatch = errors.New("operation not supported by goal type")

	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
)
