package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationId takes the correlation id from the request header, minting one
// when absent, and echoes it back on the response.
func CorrelationId(c *gin.Context) {
	correlationId := c.GetHeader("x-correlation-id")
	if correlationId == "" {
		correlationId = uuid.New().String()
	}

	c.Set("correlationId", correlationId)
	c.Header("x-correlation-id", correlationId)
}
