package middleware

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/utils"
)

// ErrorHandler renders the last error attached with c.Error as the error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		appErr := utils.Normalize(err)
		if appErr.StatusCode >= http.StatusInternalServerError {
			log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		utils.JSONError(c, appErr)
	}
}

// NoRoute answers unknown paths with a 404 listing the routes sharing the first segment.
func NoRoute(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		prefix := "/" + strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]

		suggestions := []string{}
		for _, route := range r.Routes() {
			if strings.HasPrefix(route.Path, prefix) {
				suggestions = append(suggestions, route.Method+" "+route.Path)
			}
		}
		sort.Strings(suggestions)

		utils.JSONError(c, utils.NotFound("route", fmt.Sprintf("path=%s %s", c.Request.Method, path)).
			WithMore(gin.H{"suggestions": suggestions}))
	}
}
