package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"catalog_api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(buf *bytes.Buffer) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(logger.NewWithWriter(buf, "info", "text")))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })
	r.GET("/fail", func(c *gin.Context) { c.String(http.StatusInternalServerError, "There is an internal server error") })
	return r
}

func TestRequestID_Generated(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("expected a generated request id")
	}
	if w.Body.String() != id {
		t.Errorf("expected handler to see request id %q, got %q", id, w.Body.String())
	}
	if !strings.Contains(buf.String(), "request_id="+id) {
		t.Errorf("expected request id in log line: %q", buf.String())
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected propagated request id, got %q", got)
	}
}

func TestLogger_ServerErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "status=500") {
		t.Errorf("expected error-level log with status 500, got %q", out)
	}
	if !strings.Contains(out, "path=/fail") {
		t.Errorf("expected path in log line, got %q", out)
	}
}
