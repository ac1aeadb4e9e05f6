package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/usestring/graylog-mcp/pkg/graylog"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeGraylogError = "GRAYLOG_ERROR"
	ErrCodeNetworkError = "NETWORK_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeTimeout      = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapGraylogError converts a graylog client error to a coded error. API
// answers keep their status line and body; transport failures keep the
// target URL; timeouts get their own code.
func WrapGraylogError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError

	var apiErr *graylog.APIError
	var transportErr *graylog.TransportError
	var netErr net.Error

	switch {
	case errors.As(err, &apiErr):
		code := ErrCodeGraylogError
		if apiErr.StatusCode == 404 {
			code = ErrCodeNotFound
		}
		msg := apiErr.Status
		if apiErr.Body != "" {
			msg += ": " + apiErr.Body
		}
		coded = &CodedError{
			Code:    code,
			Message: msg,
			Cause:   err,
		}

	case errors.As(err, &netErr) && netErr.Timeout(),
		strings.Contains(err.Error(), "context deadline exceeded"):
		coded = &CodedError{
			Code:    ErrCodeTimeout,
			Message: "request timed out",
			Cause:   err,
		}

	case errors.As(err, &transportErr):
		coded = &CodedError{
			Code:    ErrCodeNetworkError,
			Message: fmt.Sprintf("Graylog unreachable at %s", transportErr.URL),
			Cause:   err,
		}

	default:
		coded = &CodedError{
			Code:    ErrCodeGraylogError,
			Message: err.Error(),
			Cause:   err,
		}
	}

	slog.Warn("graylog API error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
