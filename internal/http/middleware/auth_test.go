package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

func newProtectedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWT(), func(c *gin.Context) {
		uid := c.GetString("user_id")
		c.JSON(200, gin.H{"user_id": uid})
	})
	return r
}

func TestJWTMiddlewareRejectsMissingToken(t *testing.T) {
	service.InitJWT("test-secret")
	r := newProtectedEngine()

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, w.Code)
		}
	}
}

func TestJWTMiddlewarePassesValidToken(t *testing.T) {
	service.InitJWT("test-secret")
	r := newProtectedEngine()

	token, err := service.GenerateJWT("64b7f1c2a1b2c3d4e5f60718")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}
