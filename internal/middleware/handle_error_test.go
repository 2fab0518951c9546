package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/crgw/stayzen-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should write the error body and log the cause", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)

		response := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(response)
		c.Set("logger", &log)

		middleware.HandleError(c, http.StatusForbidden, "forbidden access", errors.New("email mismatch"))

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, response.Code)
		assert.JSONEq(t, `{"message":"forbidden access"}`, response.Body.String())
		assert.Contains(t, out.String(), "email mismatch")
		assert.Contains(t, out.String(), `"code":403`)
	})

	t.Run("should work before the logger middleware ran", func(t *testing.T) {
		response := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(response)

		middleware.HandleError(c, http.StatusBadRequest, "invalid id", nil)

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.JSONEq(t, `{"message":"invalid id"}`, response.Body.String())
	})
}
