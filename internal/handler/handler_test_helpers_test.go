package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/db"
	"github.com/minglemoody/internal/logging"
	"github.com/minglemoody/internal/storage"
	"github.com/minglemoody/internal/storage/memstore"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

// stubHTMLRender records the last template rendered instead of executing it.
type stubHTMLRender struct {
	mu   sync.Mutex
	name string
	data gin.H
}

type stubHTMLInstance struct{}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.name = name
	r.data, _ = data.(gin.H)
	return stubHTMLInstance{}
}

func (r *stubHTMLRender) last() (string, gin.H) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name, r.data
}

func (stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// failingBackend reads nothing and refuses every write.
type failingBackend struct{}

var errBackendDown = errors.New("backend down")

func (failingBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errBackendDown
}

func (failingBackend) Set(context.Context, string, []byte) error {
	return errBackendDown
}

func (failingBackend) Delete(context.Context, string) error {
	return errBackendDown
}

func (failingBackend) Ping(context.Context) error {
	return errBackendDown
}

func (failingBackend) Close() error {
	return nil
}

type testEnv struct {
	api    *API
	store  *content.Store
	db     *gorm.DB
	html   *stubHTMLRender
	router *gin.Engine
}

func newTestEnv(t *testing.T, backend storage.Backend, authEnabled bool) *testEnv {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	if backend == nil {
		backend = memstore.New()
	}

	store := content.NewStore(backend, logging.Discard())
	api := NewAPI(gdb, store, logging.Discard(), authEnabled)

	html := &stubHTMLRender{}
	router := gin.New()
	router.HTMLRender = html
	router.Use(sessions.Sessions("minglemoody_session", cookie.NewStore([]byte("test-secret"))))

	return &testEnv{api: api, store: store, db: gdb, html: html, router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
