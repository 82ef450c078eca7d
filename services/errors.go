package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindUnavailable
	KindInsufficientInventory
	KindDuplicate
	KindUnauthorized
)

// AppError is a domain failure whose message is safe to show to clients.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return e.Message }

func Validation(msg string) error  { return &AppError{Kind: KindValidation, Message: msg} }
func NotFound(msg string) error    { return &AppError{Kind: KindNotFound, Message: msg} }
func Unavailable(msg string) error { return &AppError{Kind: KindUnavailable, Message: msg} }
func Duplicate(msg string) error   { return &AppError{Kind: KindDuplicate, Message: msg} }
func Unauthorized(msg string) error {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func InsufficientInventory(remaining int) error {
	if remaining < 0 {
		remaining = 0
	}
	return &AppError{Kind: KindInsufficientInventory, Message: fmt.Sprintf("Only %d dabbas available", remaining)}
}

// KindOf reports KindInternal for anything that is not an AppError.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// notFoundOr turns gorm's missing-row error into a NotFound with msg.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(msg)
	}
	return err
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
