package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nzai/stockapi/quotes"
	"go.uber.org/zap"
)

// getStock GET /stocks/:ticker
func (s Server) getStock(c *gin.Context) {
	ticker := c.Param("ticker")

	record, err := s.quoter.Fetch(c.Request.Context(), ticker)
	if err != nil {
		status := http.StatusInternalServerError
		if quotes.KindOf(err) == quotes.KindNotFound {
			status = http.StatusNotFound
		} else {
			zap.L().Error("fetch stock failed",
				zap.Error(err),
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.String("ticker", ticker))
		}

		c.JSON(status, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// getStocks GET /stocks?tickers=AAPL,MSFT
func (s Server) getStocks(c *gin.Context) {
	tickers, found := c.GetQuery("tickers")
	if !found {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "query parameter tickers is required"})
		return
	}

	batch := s.aggregator.FetchMany(c.Request.Context(), tickers)

	c.JSON(http.StatusOK, BatchResponse{Data: batch})
}
