package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(l *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func post(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.RemoteAddr = ip + ":5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterPerClient(t *testing.T) {
	r := limitedRouter(NewRateLimiter(0.01, 2))

	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.1"))
	assert.Equal(t, http.StatusCreated, post(r, "10.0.0.2"))
}

func TestRateLimiterDisabled(t *testing.T) {
	for _, l := range []*RateLimiter{nil, NewRateLimiter(0, 0)} {
		r := limitedRouter(l)
		for i := 0; i < 20; i++ {
			assert.Equal(t, http.StatusCreated, post(r, "10.0.0.1"))
		}
	}
}
