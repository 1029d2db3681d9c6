package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the success envelope. more is omitted when nil.
func JSONSuccess(c *gin.Context, code int, data interface{}, more ...gin.H) {
	body := gin.H{"success": true, "data": data}
	if len(more) > 0 && more[0] != nil {
		body["more"] = more[0]
	}
	c.JSON(code, body)
}

// JSONError writes the error envelope for err and aborts the chain.
func JSONError(c *gin.Context, err *AppError) {
	err.Success = false
	if err.Type == "" {
		err.Type = ErrUnknown
	}
	if err.Title == "" {
		err.Title = "unknown/unexpected error happened"
	}
	if err.Message == "" {
		err.Message = "unknown/unexpected error happened. check your request or contact the admin!"
	}
	if err.StatusCode == 0 {
		err.StatusCode = 500
	}
	c.AbortWithStatusJSON(err.StatusCode, err)
}
