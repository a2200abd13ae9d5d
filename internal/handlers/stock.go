package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/services"
)

type StockHandler struct {
	detailsService services.StockDetailsService
}

func NewStockHandler(detailsService services.StockDetailsService) *StockHandler {
	return &StockHandler{detailsService: detailsService}
}

// GetDetails serves the details payload for one ticker. The summary field
// reflects the current lifecycle state; clients poll until it moves past
// "generating".
func (sh *StockHandler) GetDetails(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		RespondError(c, fmt.Errorf("ticker is required: %w", pkgerrors.ErrInvalidArgument))
		return
	}
	details, err := sh.detailsService.GetDetails(c.Request.Context(), ticker)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, details)
}
