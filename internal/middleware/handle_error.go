package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HandleError writes the JSON error body expected by clients and aborts the
// request. The underlying error only goes to the log, never to the response.
func HandleError(c *gin.Context, status int, message string, err error) {
	if value, exists := c.Get("logger"); exists {
		logger := value.(*zerolog.Logger)

		event := logger.Error().Int("code", status)
		if err != nil {
			event = event.Err(err)
		}
		event.Msg(message)
	}

	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
