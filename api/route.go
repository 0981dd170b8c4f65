package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nzai/stockapi/constants"
)

func (s Server) registeRoute() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
	})

	s.engine.GET("/", s.info)
	s.engine.GET("/api/ping", s.ping)

	s.engine.GET("/stocks/:ticker", s.getStock)
	s.engine.GET("/stocks", s.getStocks)
}

func (s Server) info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Title:       constants.Title,
		Description: constants.Description,
		Version:     constants.Version,
	})
}

func (s Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
