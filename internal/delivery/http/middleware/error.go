package middleware

import (
	"errors"
	"log"

	"pad2skills/internal/pkg/response"
	"pad2skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// AppError carries an HTTP status with a user-facing message. Anything else
// escaping a handler collapses to a generic 500 so raw failures never reach
// the end user.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if m.logger != nil {
					m.logger.Printf("panic recovered: %v", r)
				}
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		if status >= 500 && m.logger != nil {
			m.logger.Printf("request failed: %v", err)
		}
		return response.Error(c, status, msg, nil)
	}
}

func normalizeError(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.MessageError
		}
		return status, msg
	}

	// Dataset load failures become short user-facing messages on a 422, per
	// the dashboard's degrade-not-crash contract.
	if usecase.IsDataUnavailable(err) {
		return fiber.StatusUnprocessableEntity, usecase.UserMessage(err)
	}
	if errors.Is(err, usecase.ErrProjectNotFound) {
		return fiber.StatusNotFound, usecase.UserMessage(err)
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		return fiber.StatusBadRequest, usecase.UserMessage(err)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.MessageError
		}
		return status, msg
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
