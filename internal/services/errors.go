package services

import (
	"errors"
	"fmt"
)

// ErrSubmissionInProgress is returned when a submission is started while
// another one from the same controller is still in flight.
var ErrSubmissionInProgress = errors.New("submission already in progress")

// ValidationError is implemented by input errors that are reported to the
// user directly and never reach the network.
type ValidationError interface {
	error
	validation()
}

type MissingFileError struct{}

func (MissingFileError) Error() string {
	return "Silakan pilih file PDF terlebih dahulu"
}

func (MissingFileError) validation() {}

type MissingStudentInfoError struct {
	Fields []string
}

func (e MissingStudentInfoError) Error() string {
	return "Silakan lengkapi informasi mahasiswa"
}

func (MissingStudentInfoError) validation() {}

// ReadError means the selected file could not be read.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read file %q: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// TransportError covers network failures and replies that are not a JSON envelope.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is a failure reported by the checker itself (success:false).
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is an input validation failure.
func IsValidationError(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
