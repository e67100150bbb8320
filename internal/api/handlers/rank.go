package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SarthakPDalvi/quant-research/internal/api/models"
	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/valuation"
)

// RankHandler handles candidate ranking requests
type RankHandler struct{}

// NewRankHandler creates a new rank handler
func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// RankCandidates handles POST /api/v1/rank
func (h *RankHandler) RankCandidates(c *gin.Context) {
	var req models.RankRequest
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

	series, err := toSeries(req.Prices)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PRICES",
				Message: err.Error(),
			},
		})
		return
	}

	candidates := make([]model.TradeSchedule, 0, len(req.Candidates))
	for i, events := range req.Candidates {
		schedule, err := toSchedule(events)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_CANDIDATE",
					Message: err.Error(),
					Details: map[string]interface{}{"candidate_index": i},
				},
			})
			return
		}
		candidates = append(candidates, schedule)
	}

	ranked, rejected := valuation.Rank(candidates, contract, series, valuation.RankOptions{
		Workers: req.Workers,
	})

	limit := req.Limit
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	ranked = ranked[:limit]

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		entry := models.Ranking{
			Rank:           i + 1,
			CandidateIndex: r.Index,
			Summary:        toSummary(r.Result),
		}
		if fwd := r.Schedule.FinalWithdrawalDate(); !fwd.IsZero() {
			entry.FinalWithdrawalDate = fwd.Format(dateLayout)
		}
		rankings[i] = entry
	}

	resp := models.RankResponse{Rankings: rankings}
	for _, rej := range rejected {
		resp.Rejected = append(resp.Rejected, models.RejectedCandidate{
			CandidateIndex: rej.Index,
			Reason:         rej.Err.Error(),
		})
	}
	c.JSON(http.StatusOK, resp)
}
