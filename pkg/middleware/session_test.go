package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contestboard/pkg/middleware"
	"contestboard/pkg/session"

	"github.com/stretchr/testify/assert"
)

func TestCheckSession(t *testing.T) {
	registry := session.NewMemoryRegistry()
	token, err := registry.Create()
	assert.NoError(t, err)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	gate := middleware.CheckSession(registry)(next)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "missing header",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown token",
			token:          "1234deadbeef",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			token:          token,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			called = false

			req := httptest.NewRequest(http.MethodPost, "/upload/registered", nil)
			if test.token != "" {
				req.Header.Set("X-Session-Id", test.token)
			}
			rr := httptest.NewRecorder()

			gate.ServeHTTP(rr, req)

			assert.Equal(t, test.expectedStatus, rr.Code)
			assert.Equal(t, test.expectNext, called)
			if !test.expectNext {
				assert.Contains(t, rr.Body.String(), "Session expired")
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"success":false,"message":"Session expired"}`, rr.Body.String())
			}
		})
	}
}

func TestCheckSession_AfterLogout(t *testing.T) {
	registry := session.NewMemoryRegistry()
	token, err := registry.Create()
	assert.NoError(t, err)
	assert.NoError(t, registry.Invalidate(token))

	gate := middleware.CheckSession(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run after logout")
	}))

	req := httptest.NewRequest(http.MethodPost, "/upload/winners", nil)
	req.Header.Set("X-Session-Id", token)
	rr := httptest.NewRecorder()

	gate.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPanic_RecoversWithJSONBody(t *testing.T) {
	handler := middleware.Panic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/registered", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rr.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	handler := middleware.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/registered", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
