package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrUnsupportedMedia         = errors.New("unsupported media type")
	ErrNoSelection              = errors.New("no media selected")
	ErrClassificationInProgress = errors.New("classification already in progress")
)

type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindStorage    ErrorKind = "storage"
	ErrorKindDerivation ErrorKind = "derivation"
	ErrorKindClassifier ErrorKind = "classifier"
)

// Sentinels for errors.Is against an *Error of the matching kind.
var (
	ErrValidation = &Error{Kind: ErrorKindValidation}
	ErrStorage    = &Error{Kind: ErrorKindStorage}
	ErrDerivation = &Error{Kind: ErrorKindDerivation}
	ErrClassifier = &Error{Kind: ErrorKindClassifier}
)

// Error is a pipeline failure tagged with the step that produced it.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return e.Op
	}
	return string(e.Kind) + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same kind, so the package sentinels work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewValidationError(op string, err error) *Error {
	return &Error{Kind: ErrorKindValidation, Op: op, Err: err}
}

func NewStorageError(op string, err error) *Error {
	return &Error{Kind: ErrorKindStorage, Op: op, Err: err}
}

func NewDerivationError(op string, err error) *Error {
	return &Error{Kind: ErrorKindDerivation, Op: op, Err: err}
}

func NewClassifierError(op string, err error) *Error {
	return &Error{Kind: ErrorKindClassifier, Op: op, Err: err}
}

// AsKind keeps an existing *Error as-is and wraps anything else in the
// given kind.
func AsKind(kind ErrorKind, op string, err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Kind: kind, Op: op, Err: err}
}
