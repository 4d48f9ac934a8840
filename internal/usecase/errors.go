package usecase

import (
	"errors"
	"fmt"
)

// 呼び出し側が扱うエラーの種類
type ErrorKind string

const (
	KindDuplicateCode     ErrorKind = "DuplicateCode"
	KindProductNotFound   ErrorKind = "ProductNotFound"
	KindInsufficientStock ErrorKind = "InsufficientStock"
	KindInvalidQuantity   ErrorKind = "InvalidQuantity"
	KindInvalidInput      ErrorKind = "InvalidInput"
	KindStorageFailure    ErrorKind = "StorageFailure"
)

// errors.Is で種類だけを比べるための番兵
var (
	ErrDuplicateCode     = &InventoryError{Kind: KindDuplicateCode}
	ErrProductNotFound   = &InventoryError{Kind: KindProductNotFound}
	ErrInsufficientStock = &InventoryError{Kind: KindInsufficientStock}
	ErrInvalidQuantity   = &InventoryError{Kind: KindInvalidQuantity}
	ErrInvalidInput      = &InventoryError{Kind: KindInvalidInput}
	ErrStorageFailure    = &InventoryError{Kind: KindStorageFailure}
)

type InventoryError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *InventoryError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *InventoryError) Unwrap() error {
	return e.Err
}

func (e *InventoryError) Is(target error) bool {
	t, ok := target.(*InventoryError)
	return ok && t.Kind == e.Kind
}

func NewInventoryError(kind ErrorKind, message string, cause error) error {
	return &InventoryError{
		Kind:    kind,
		Message: message,
		Err:     cause,
	}
}

func AsInventoryError(err error) (*InventoryError, bool) {
	var ie *InventoryError
	ok := errors.As(err, &ie)
	return ie, ok
}

func storageError(message string, cause error) error {
	return NewInventoryError(KindStorageFailure, message, cause)
}
