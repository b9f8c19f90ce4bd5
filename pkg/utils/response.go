package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "order-catalog/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Total   *uint64     `json:"total,omitempty"`
}

// ErrorEnvelope is the uniform error body: timestamp, status, reason phrase,
// message and the originating path, plus a field map for validation errors.
type ErrorEnvelope struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		response.Total = &total[0]
	}
	return ctx.JSON(code, response)
}

func ErrorResponse(ctx echo.Context, err error) error {
	code := apperrors.StatusOf(err)

	message := err.Error()
	var fields map[string]string
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		message = httpErr.Message
		fields = httpErr.Fields
	}
	if code == http.StatusInternalServerError {
		// Never leak internals; the handler already logged the cause.
		message = apperrors.ErrInternalServer.Error()
	}

	envelope := &ErrorEnvelope{
		Timestamp: time.Now(),
		Status:    code,
		Error:     http.StatusText(code),
		Message:   message,
		Path:      ctx.Request().URL.Path,
		Fields:    fields,
	}
	return ctx.JSON(code, envelope)
}
