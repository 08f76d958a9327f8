package controller

import (
	"fmt"

	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
)

const (
	MsgFillAllFields   = "Please fill in all fields before predicting."
	MsgPredictFailed   = "Prediction failed. Please try again."
	MsgTransportFailed = "Something went wrong while calling the server."
)

// ValidationError means a required field was empty. No request was made.
type ValidationError struct {
	Field datastructures.Field
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing value for %s", e.Field)
}

// ServerError means the backend answered but reported a failure, either with
// a non-2xx status or with success set to false.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("prediction failed (status %d): %s", e.StatusCode, e.Message)
}

// TransportError covers network failures and responses that could not be
// decoded into the expected schema.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Cause lets github.com/pkg/errors walk to the underlying error.
func (e *TransportError) Cause() error {
	return e.Err
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
