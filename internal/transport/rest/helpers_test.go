package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/pkg/ctxutil"
)

//go:generate moq -out farm_service_mock_test.go -pkg rest . farmService
//go:generate moq -out animal_service_mock_test.go -pkg rest . animalService
//go:generate moq -out event_service_mock_test.go -pkg rest . eventService
//go:generate moq -out sanitary_service_mock_test.go -pkg rest . sanitaryService
//go:generate moq -out reproduction_service_mock_test.go -pkg rest . reproductionService
//go:generate moq -out report_service_mock_test.go -pkg rest . reportService
//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out password_service_mock_test.go -pkg rest . passwordService
//go:generate moq -out user_service_mock_test.go -pkg rest . userService

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

// newRequest builds a request carrying an authenticated manager.
func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	return withCaller(req, 7, domain.RoleManager)
}

func withCaller(req *http.Request, userID int64, role domain.Role) *http.Request {
	ctx := ctxutil.WithUserID(req.Context(), userID)
	ctx = ctxutil.WithUserRole(ctx, role.String())
	return req.WithContext(ctx)
}

func serve(fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
