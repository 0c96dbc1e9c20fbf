package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo-app/backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func setupRateLimitRouter(config middleware.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RateLimit(config))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	router := setupRateLimitRouter(middleware.RateLimitConfig{
		RequestsPerMin:  60,
		BurstSize:       3,
		CleanupInterval: time.Minute,
	})

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected status %d, got %d", i+1, http.StatusOK, w.Code)
		}
	}
}

func TestRateLimitRejectsBeyondBurst(t *testing.T) {
	router := setupRateLimitRouter(middleware.RateLimitConfig{
		RequestsPerMin:  1,
		BurstSize:       1,
		CleanupInterval: time.Minute,
	})

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("First request: expected status %d, got %d", http.StatusOK, w.Code)
	}

	req, _ = http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Second request: expected status %d, got %d", http.StatusTooManyRequests, w.Code)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	router := setupRateLimitRouter(middleware.RateLimitConfig{
		RequestsPerMin:  1,
		BurstSize:       1,
		CleanupInterval: time.Minute,
	})

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	// A different client has its own bucket.
	req, _ = http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.0.0.4:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d for a fresh client, got %d", http.StatusOK, w.Code)
	}
}
