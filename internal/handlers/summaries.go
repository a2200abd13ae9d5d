package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/services"
)

type SummariesHandler struct {
	summaryService services.SummaryService
}

func NewSummariesHandler(summaryService services.SummaryService) *SummariesHandler {
	return &SummariesHandler{summaryService: summaryService}
}

// List returns every stored summary for the ticker, newest filing first,
// including generating and error entries.
func (sh *SummariesHandler) List(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		RespondError(c, fmt.Errorf("ticker is required: %w", pkgerrors.ErrInvalidArgument))
		return
	}
	summaries, err := sh.summaryService.ListByTicker(c.Request.Context(), ticker)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"ticker": strings.ToUpper(ticker), "summaries": summaries})
}
