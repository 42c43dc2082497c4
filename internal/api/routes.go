package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/help/render", h.render)
		api.GET("/catalog", h.catalogList)
		api.GET("/catalog/:name", h.catalogImage)
		api.GET("/catalog/:name/text", h.catalogText)
	}
}
