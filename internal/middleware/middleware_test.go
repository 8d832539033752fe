package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/eodpulse/internal/domain/dto"
)

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		handler gin.HandlerFunc
		want    int
	}{
		{
			name:    "unwritten error defaults to 500",
			handler: func(c *gin.Context) { _ = c.Error(assertErr{}) },
			want:    http.StatusInternalServerError,
		},
		{
			name: "error status preserved",
			handler: func(c *gin.Context) {
				c.Status(http.StatusBadGateway)
				_ = c.Error(assertErr{})
			},
			want: http.StatusBadGateway,
		},
		{
			name: "written body untouched",
			handler: func(c *gin.Context) {
				_ = c.Error(assertErr{})
				c.String(http.StatusTeapot, "short and stout")
			},
			want: http.StatusTeapot,
		},
		{
			name:    "no error",
			handler: func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			want:    http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", tc.handler)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.want {
				t.Fatalf("code=%d want %d", w.Code, tc.want)
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Message != "internal server error" || body.ErrorDetails != "request_id="+w.Header().Get(RequestIDHeader) {
		t.Fatalf("unexpected body %+v", body)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Fatalf("panic value leaked to client: %s", w.Body.String())
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
		if len(c.Errors) != 1 {
			t.Fatalf("error not recorded on context")
		}
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Message != "bad stuff" || body.ErrorDetails != "boom" {
		t.Fatalf("unexpected body %+v", body)
	}
}
