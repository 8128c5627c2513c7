package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"margin_engine/pkg/errcodes"
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// ErrorCode нужен транспортному слою для выбора кода ответа.
func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// Is сравнивает ошибки по коду, чтобы errors.Is работал с сентинелами ниже.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.cause == nil && t.Message == ""
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// Сентинелы для errors.Is: сравниваются только по коду.
var (
	ErrInvalidInput            = &AppError{Code: errcodes.InvalidInput}            //nolint:gochecknoglobals
	ErrDegenerateConfiguration = &AppError{Code: errcodes.DegenerateConfiguration} //nolint:gochecknoglobals
	ErrCatalogUnavailable      = &AppError{Code: errcodes.CatalogUnavailable}      //nolint:gochecknoglobals
)
