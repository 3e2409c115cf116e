package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"invalid email domain", domain.ErrInvalidEmailDomain, http.StatusBadRequest},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"review not found", domain.ErrReviewNotFound, http.StatusNotFound},
		{"missing upload", domain.ErrMissingUpload, http.StatusBadRequest},
		{"unparsable upload", fmt.Errorf("%w: modules: bad zip", domain.ErrUnparsableUpload), http.StatusUnprocessableEntity},
		{"mail delivery", fmt.Errorf("%w: smtp down", domain.ErrMailDelivery), http.StatusBadGateway},
		{"echo error", echo.NewHTTPError(http.StatusForbidden, "forbidden"), http.StatusForbidden},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

// Internal causes must not leak to the client.
func TestHTTPErrorHandler_GenericMessageForUnexpected(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("pq: connection refused at 10.0.0.3"), c)

	if body := rec.Body.String(); body == "" || body != "{\"error\":\"internal server error\"}\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}
