package models

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// ErrorKind is a stable classification of a domain failure, usable by
// the transport layer to derive a status code without string matching.
type ErrorKind string

const (
	ErrKindNotFound          ErrorKind = "not_found"
	ErrKindForbidden         ErrorKind = "forbidden"
	ErrKindConflict          ErrorKind = "conflict"
	ErrKindInvalidTransition ErrorKind = "invalid_transition"
	ErrKindReferential       ErrorKind = "referential_error"
)

type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) HTTPStatus() int {
	switch e.Kind {
	case ErrKindNotFound:
		return http.StatusNotFound
	case ErrKindForbidden:
		return http.StatusForbidden
	case ErrKindConflict, ErrKindInvalidTransition:
		return http.StatusConflict
	case ErrKindReferential:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func NewNotFoundError(message string) *DomainError {
	return &DomainError{Kind: ErrKindNotFound, Message: message}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{Kind: ErrKindForbidden, Message: message}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Kind: ErrKindConflict, Message: message}
}

func NewInvalidTransitionError(from, to OrderStatus) *DomainError {
	return &DomainError{
		Kind:    ErrKindInvalidTransition,
		Message: "illegal order transition from " + string(from) + " to " + string(to),
	}
}

func NewReferentialError(message string) *DomainError {
	return &DomainError{Kind: ErrKindReferential, Message: message}
}

// translateStoreError maps gorm's translated driver errors onto the
// domain taxonomy. Requires TranslateError enabled on the gorm config
// so both the postgres and sqlite drivers surface typed errors.
func translateStoreError(err error, conflictMsg string, referentialMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return NewConflictError(conflictMsg)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return NewReferentialError(referentialMsg)
	}
	return err
}
