package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/eodpulse/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_PRETTY", "false")
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestRequestLogger_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	rid := w.Header().Get(RequestIDHeader)
	if rid == "" {
		t.Fatalf("missing X-Request-ID header")
	}
	line := buf.String()
	if !strings.Contains(line, `"level":"info"`) || !strings.Contains(line, `"request_id":"`+rid+`"`) || !strings.Contains(line, `"path":"/ping"`) {
		t.Fatalf("unexpected log line: %s", line)
	}
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusBadGateway, "error"},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			buf := captureLogs(t)
			router := gin.New()
			router.Use(RequestLogger())
			router.GET("/", func(c *gin.Context) {
				if tc.status >= 400 {
					_ = c.Error(errors.New("upstream said no"))
				}
				c.Status(tc.status)
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			if !strings.Contains(buf.String(), `"level":"`+tc.level+`"`) {
				t.Fatalf("want level %s in %s", tc.level, buf.String())
			}
			if tc.status >= 400 && !strings.Contains(buf.String(), "upstream said no") {
				t.Fatalf("errors not logged: %s", buf.String())
			}
		})
	}
}
