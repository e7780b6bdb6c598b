package contract

import "errors"

var (
	ErrInference  = errors.New("inference request failed")
	ErrNoAnswers  = errors.New("no council member produced an answer")
	ErrValidation = errors.New("validation failed")
)
