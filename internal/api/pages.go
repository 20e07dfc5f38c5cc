package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/*.html
var webContent embed.FS

func pageTemplates() *template.Template {
	return template.Must(template.ParseFS(webContent, "web/*.html"))
}

func (s *Server) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (s *Server) searchPage(c *gin.Context) {
	c.HTML(http.StatusOK, "search.html", gin.H{
		"Type":  c.Query("type"),
		"Query": c.Query("q"),
	})
}

func (s *Server) editorPage(c *gin.Context) {
	c.HTML(http.StatusOK, "editor.html", gin.H{
		"Type":    c.Query("type"),
		"AlbumID": c.Query("albumId"),
	})
}
