package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SarthakPDalvi/quant-research/internal/api/models"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
)

// PricesHandler answers interpolated price queries against the series the
// server was started with.
type PricesHandler struct {
	series *pricing.Series
}

// NewPricesHandler creates a prices handler. series may be nil when the
// server was started without a price file; queries then return 404.
func NewPricesHandler(series *pricing.Series) *PricesHandler {
	return &PricesHandler{series: series}
}

// QueryPrice handles GET /api/v1/prices/query
func (h *PricesHandler) QueryPrice(c *gin.Context) {
	var req models.PriceQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DATE",
				Message: "date must be in YYYY-MM-DD format",
			},
		})
		return
	}

	if h.series == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_PRICE_SERIES",
				Message: "server was started without a price file",
			},
		})
		return
	}

	price, err := h.series.Query(date)
	if err != nil {
		if errors.Is(err, pricing.ErrOutOfDomain) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "OUT_OF_DOMAIN",
					Message: err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "QUERY_FAILED",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.PriceQueryResponse{
		Date:  req.Date,
		Price: price,
	})
}
