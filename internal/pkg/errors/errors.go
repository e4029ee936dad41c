package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	cause      error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает исходную ошибку инфраструктуры, если она есть
func (e *AppError) Unwrap() error {
	return e.cause
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями.
// Шаблонные ошибки из codes.go общие для всех запросов, поэтому их нельзя мутировать.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage возвращает копию ошибки с другим сообщением
func (e *AppError) WithMessage(format string, args ...interface{}) *AppError {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// Wrap возвращает копию ошибки, сохраняя причину для логов
func (e *AppError) Wrap(cause error) *AppError {
	cp := *e
	cp.cause = cause
	return &cp
}

// As извлекает *AppError из цепочки ошибок
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode проверяет код AppError в цепочке ошибок
func HasCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

// NotFound - сущность с указанным ID не найдена
func NotFound(entity, id string) *AppError {
	return ErrNotFound.WithMessage("%s with ID %s not found", entity, id)
}

// AlreadyExists - сущность с указанным ключом уже существует
func AlreadyExists(entity, field, value string) *AppError {
	return ErrConflict.WithMessage("%s with %s %s already exists", entity, field, value)
}

// Conflict - нарушение бизнес-ограничения
func Conflict(format string, args ...interface{}) *AppError {
	return ErrConflict.WithMessage(format, args...)
}

// Validation - невалидные входные данные
func Validation(format string, args ...interface{}) *AppError {
	return ErrValidation.WithMessage(format, args...)
}
