package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})
	return router
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	router := requestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	header := w.Header().Get(headerRequestID)
	_, err := uuid.Parse(header)
	require.NoError(t, err, "generated request ID should be a UUID")
	assert.Equal(t, header, w.Body.String(), "context value should match response header")
}

func TestRequestID_HonorsCallerProvidedID(t *testing.T) {
	t.Parallel()

	router := requestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(headerRequestID, "caller-id-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, "caller-id-42", w.Header().Get(headerRequestID))
	assert.Equal(t, "caller-id-42", w.Body.String())
}
