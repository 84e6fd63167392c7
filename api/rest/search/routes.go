package search

import "github.com/gin-gonic/gin"

// registers enterprise search routes
func RegisterRoutes(router *gin.RouterGroup, searcher Searcher) {
	router.GET("/search", Handler(searcher))
}
