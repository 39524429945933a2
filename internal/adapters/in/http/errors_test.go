package http_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "grubdash/internal/adapters/in/http"
	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		body   string
		logged bool
	}{
		{"validation", errs.NewValidationError("Dish must include a name."), http.StatusBadRequest,
			`{"error":"Dish must include a name."}`, false},
		{"wrapped not found", fmt.Errorf("lookup: %w", errs.NewNotFoundError("Could not find dish with id 7.")),
			http.StatusNotFound, `{"error":"Could not find dish with id 7."}`, false},
		{"method not allowed", errs.NewMethodNotAllowedError("DELETE not allowed for dish 1."),
			http.StatusMethodNotAllowed, `{"error":"DELETE not allowed for dish 1."}`, false},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError,
			`{"error":"Something went wrong!"}`, true},
		{"echo bad request", echo.NewHTTPError(http.StatusBadRequest, "bad header"), http.StatusBadRequest,
			`{"error":"bad header"}`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			e := echo.New()
			e.HTTPErrorHandler = httpin.NewErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))
			e.GET("/boom", func(echo.Context) error { return tc.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
			if tc.logged {
				assert.Contains(t, logs.String(), "disk on fire")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}
