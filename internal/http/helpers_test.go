package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jobnest/jobnest-api/internal/config"
	httpapi "github.com/jobnest/jobnest-api/internal/http"
	"github.com/jobnest/jobnest-api/internal/log"
	"github.com/jobnest/jobnest-api/internal/queue"
)

type testEnv struct {
	T      *testing.T
	Store  *memStore
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if _, err := log.Init(false); err != nil {
		t.Fatalf("log init: %v", err)
	}

	cfg := config.Config{
		JWTSecret:      "test-secret",
		SessionTTLDays: 5,
		CookieTTLDays:  7,
		BcryptCost:     4, // min cost keeps the suite fast
		ClientURL:      "http://localhost:5173",
	}

	store := newMemStore()
	h := httpapi.NewHandler(store, cfg, nil, queue.NewNoop())

	gin.SetMode(gin.TestMode)
	r := httpapi.NewRouter(h)

	return &testEnv{T: t, Store: store, Router: r}
}

// do runs one request against the router. cookies carry the session between
// calls the way a browser would.
func (e *testEnv) do(method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	e.T.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	e.Router.ServeHTTP(w, req)
	return w
}
