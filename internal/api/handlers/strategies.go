package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SarthakPDalvi/quant-research/internal/strategy"
)

// ListStrategies handles GET /api/v1/strategies
func ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": strategy.List()})
}
