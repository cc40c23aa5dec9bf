// Package web serves the embedded dashboard SPA: a login view and a
// dashboard view talking to the JSON API from the same process.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts the SPA behind every route the API does not claim.
// Unknown GET paths fall back to the app shell so client-side navigation
// survives a reload.
func Register(router *gin.Engine) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}

	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		panic(err)
	}

	fileServer := http.FileServer(http.FS(static))

	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
			return
		}

		path := strings.TrimPrefix(c.Request.URL.Path, "/")
		if path != "" && path != "index.html" {
			if _, err := fs.Stat(static, path); err == nil {
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}
