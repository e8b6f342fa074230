package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestVentanaIPPermitir(t *testing.T) {
	v := nuevaVentanaIP("prueba", 3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := v.permitir("10.0.0.1")
		assert.True(t, ok)
	}
	ok, hasta := v.permitir("10.0.0.1")
	assert.False(t, ok)
	assert.True(t, hasta.After(time.Now()))

	// Another IP carries its own counter.
	ok, _ = v.permitir("10.0.0.2")
	assert.True(t, ok)
}

func TestRateLimiterDevuelve429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(2, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	estados := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "192.168.1.50:4567"
		r.ServeHTTP(w, req)
		estados = append(estados, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, estados)
}
