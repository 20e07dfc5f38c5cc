package api

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches the JSON API and the HTML pages.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(pageTemplates())

	r.GET("/", s.indexPage)
	r.GET("/search", s.searchPage)
	r.GET("/editor", s.editorPage)

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/search", s.searchCatalog)
		api.POST("/sessions", s.createSession)
		api.GET("/sessions/:id/form", s.sessionForm)
		api.PATCH("/sessions/:id/config", s.updateConfig)
		api.POST("/sessions/:id/config/reset", s.resetConfig)
		api.PUT("/sessions/:id/template", s.setTemplate)
		api.GET("/sessions/:id/preview", s.previewImage)
		api.POST("/sessions/:id/export", s.exportArtifact)
		api.DELETE("/sessions/:id", s.deleteSession)
	}
}
