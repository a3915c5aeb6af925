package echoapi

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutorai/core"
)

func TestServer_Home(t *testing.T) {
	srv, _ := setup(t)

	rec := do(srv, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to TutorAI API!", rec.Body.String())
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := setup(t)

	checkCodeAndData(t, httpTest{
		wantCode: http.StatusNotFound,
		wantData: []byte(`{"error":"Not Found"}`),
	}, do(srv, http.MethodGet, "/api/grades"))
}

func TestServer_TrailingSlash(t *testing.T) {
	srv, _ := setup(t)
	assert.Equal(t, http.StatusOK, do(srv, http.MethodGet, "/api/students/").Code)
}

func TestServer_RequestID(t *testing.T) {
	srv, _ := setup(t)
	rec := do(srv, http.MethodGet, "/api/courses")
	assert.Len(t, rec.Header().Get("X-Request-Id"), 36)
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := setup(t)
	do(srv, http.MethodGet, "/api/students")
	do(srv, http.MethodGet, "/api/students/42")

	rec := do(srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `tutorai_http_requests_total{code="200",method="GET",route="/api/students"} 1`)
	assert.Contains(t, body, `tutorai_http_requests_total{code="404",method="GET",route="/api/students/:id"} 1`)
	assert.Contains(t, body, "tutorai_students 1")
	assert.Contains(t, body, "tutorai_courses 1")
	assert.Contains(t, body, "tutorai_tasks 1")
}

func TestAppHTTPErrorHandler(t *testing.T) {
	srv, _ := setup(t)
	handler := newAppHTTPErrorHandler(srv.deps.Logger, srv.deps.Translator)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantData string
	}{
		{
			name:     "not found",
			err:      errors.Wrap(core.NewNotFoundError("task not found"), "finding task"),
			wantCode: http.StatusNotFound,
			wantData: `{"error":"task not found"}`,
		},
		{
			name:     "http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantCode: http.StatusMethodNotAllowed,
			wantData: `{"error":"Method Not Allowed"}`,
		},
		{
			name:     "internal",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantData: `{"error":"Internal Server Error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, "/")
			ctx := srv.app.NewContext(req, rec)

			handler(tt.err, ctx)
			checkCodeAndData(t, httpTest{wantCode: tt.wantCode, wantData: []byte(tt.wantData)}, rec)
		})
	}
}
