package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router serves the streamable-HTTP transport at /mcp alongside a
// plain health endpoint.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Any("/mcp", gin.WrapH(s.HTTPHandler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"server":       serverName,
			"version":      serverVersion,
			"mcp_endpoint": "/mcp",
		})
	})

	return r
}
