package response

import "github.com/gin-gonic/gin"

// Error — тело ответа с ошибкой.
type Error struct {
	Message string `json:"message"`
}

func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Error{Message: message})
}

func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	if data == nil {
		c.Status(statusCode)
		return
	}
	c.JSON(statusCode, data)
}
