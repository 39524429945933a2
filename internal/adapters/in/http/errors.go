package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NotAllowedRouteName names the routes bound to the MethodNotAllowed responder.
const NotAllowedRouteName = "method-not-allowed"

const msgInternal = "Something went wrong!"

// routableMethods are the methods bound on every API path.
var routableMethods = []string{
	http.MethodConnect,
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
	http.MethodTrace,
	echo.PROPFIND,
	echo.REPORT,
}

type errorResponse struct {
	Error string `json:"error"`
}

func methodNotAllowed(c echo.Context) error {
	return errs.NewMethodNotAllowedError(
		fmt.Sprintf("%s not allowed for %s.", c.Request().Method, c.Request().URL.Path))
}

// NewErrorHandler renders failures as {"error": message}.
//
// Request errors use their kind's status and message. echo's own 404 becomes
// "Path not found: <path>". Anything else is logged and rendered as a bare 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err, c)
		if status == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorResponse{Error: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}

func classify(err error, c echo.Context) (int, string) {
	if reqErr, ok := errs.AsRequestError(err); ok && reqErr.Kind != errs.KindUnknown {
		return reqErr.Kind.HTTPStatus(), reqErr.Message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, "Path not found: " + c.Request().URL.Path
		case http.StatusMethodNotAllowed:
			return http.StatusMethodNotAllowed,
				fmt.Sprintf("%s not allowed for %s.", c.Request().Method, c.Request().URL.Path)
		}
		if httpErr.Code < http.StatusInternalServerError {
			return httpErr.Code, fmt.Sprint(httpErr.Message)
		}
	}

	return http.StatusInternalServerError, msgInternal
}
