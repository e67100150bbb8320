package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SarthakPDalvi/quant-research/internal/api/models"
	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
	"github.com/SarthakPDalvi/quant-research/internal/valuation"
)

// ValueHandler handles valuation requests. Requests without inline prices
// are valued against the server's loaded series.
type ValueHandler struct {
	series *pricing.Series
}

// NewValueHandler creates a value handler. series may be nil when the server
// was started without a price file; requests must then carry inline prices.
func NewValueHandler(series *pricing.Series) *ValueHandler {
	return &ValueHandler{series: series}
}

// RunValuation handles POST /api/v1/value
func (h *ValueHandler) RunValuation(c *gin.Context) {
	var req models.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	contract, err := toContract(req.Contract)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONTRACT",
				Message: err.Error(),
			},
		})
		return
	}

	schedule, err := toSchedule(req.Schedule)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCHEDULE",
				Message: err.Error(),
			},
		})
		return
	}

	series := h.series
	if len(req.Prices) > 0 {
		series, err = toSeries(req.Prices)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_PRICES",
					Message: err.Error(),
				},
			})
			return
		}
	} else if series == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_PRICE_SERIES",
				Message: "request carries no prices and the server was started without a price file",
			},
		})
		return
	}

	result, err := valuation.Evaluate(schedule, contract, series)
	if err != nil {
		var schedErr *model.ScheduleError
		if errors.As(err, &schedErr) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    string(schedErr.Kind),
					Message: schedErr.Error(),
					Details: map[string]interface{}{
						"at": schedErr.At.Format(dateLayout),
					},
				},
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EVALUATION_FAILED",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.ValueResponse{
		ID:      uuid.New().String(),
		Status:  "completed",
		Summary: toSummary(result),
	}
	if req.Options.IncludeLedger {
		resp.Ledger = toLedgerRows(result.Ledger)
	}
	c.JSON(http.StatusOK, resp)
}
