package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"newsapi/internal/http/middleware"
	"newsapi/internal/service"
)

// errorPayload defines the standardized error response body.
// Detail repeats the message for older clients that read "detail".
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
	Detail    string        `json:"detail"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// apiError is an error that already knows its HTTP rendering.
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func newAPIError(status int, code, message string) *apiError {
	return &apiError{status: status, code: code, message: message}
}

// resourceError turns the not-found and invalid-id sentinels into resource specific API errors.
// Other errors are returned unchanged for the ErrorHandler.
func resourceError(err error, notFoundMessage string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return newAPIError(fiber.StatusNotFound, "NOT_FOUND", notFoundMessage)
	case errors.Is(err, service.ErrInvalidID):
		return newAPIError(fiber.StatusBadRequest, "INVALID_ID", "Invalid ID")
	default:
		return err
	}
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
		Detail: message,
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Unclassified errors become 500 INTERNAL_ERROR carrying the error text and are logged with the request id.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return writeError(c, apiErr.status, apiErr.code, apiErr.message)
		}

		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password")
		case errors.Is(err, service.ErrUnauthenticated):
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Could not validate credentials")
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
		case errors.Is(err, service.ErrInvalidID):
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "Invalid ID")
		case errors.Is(err, service.ErrUnsupportedMediaType):
			return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", err.Error())
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusBadRequest:
				return writeError(c, fe.Code, "BAD_REQUEST", "bad request")
			case fiber.StatusNotFound:
				return writeError(c, fe.Code, "NOT_FOUND", "resource not found")
			case fiber.StatusMethodNotAllowed:
				return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", "method not allowed")
			case fiber.StatusRequestEntityTooLarge:
				return writeError(c, fe.Code, "PAYLOAD_TOO_LARGE", "request body too large")
			case fiber.StatusUnprocessableEntity:
				return writeError(c, fe.Code, "VALIDATION_ERROR", fe.Message)
			}
			if fe.Code < fiber.StatusInternalServerError {
				return writeError(c, fe.Code, "REQUEST_ERROR", fe.Message)
			}
		}

		log.ErrorContext(c.UserContext(), "request_failed",
			"request_id", requestIDFromCtx(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
