package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarthakPDalvi/quant-research/internal/api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler_PanicEnvelope(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		panic("series index out of range")
	})
	router.GET("/boom-err", func(c *gin.Context) {
		panic(errors.New("ledger write failed"))
	})

	for _, tt := range []struct {
		path    string
		message string
	}{
		{"/boom", "series index out of range"},
		{"/boom-err", "ledger write failed"},
	} {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
		assert.Equal(t, tt.message, resp.Error.Message)
	}
}
