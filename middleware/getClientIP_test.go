package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requestContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	c := requestContext("10.0.0.1:4321", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.3",
	})
	assert.Equal(t, "203.0.113.7", getClientIP(c))

	c = requestContext("10.0.0.1:4321", map[string]string{
		"X-Real-IP": "203.0.113.9",
	})
	assert.Equal(t, "203.0.113.9", getClientIP(c))

	c = requestContext("10.0.0.1:4321", nil)
	assert.Equal(t, "10.0.0.1", getClientIP(c))

	// RemoteAddr without a port passes through unchanged.
	c = requestContext("10.0.0.1", nil)
	assert.Equal(t, "10.0.0.1", getClientIP(c))
}
