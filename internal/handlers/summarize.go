package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/services"
)

type SummarizeHandler struct {
	summarizerService services.SummarizerService
}

func NewSummarizeHandler(summarizerService services.SummarizerService) *SummarizeHandler {
	return &SummarizeHandler{summarizerService: summarizerService}
}

// Summarize runs the summarization pipeline on caller-supplied text,
// synchronously. No record is stored; this is the ad-hoc path next to the
// filing-driven one.
func (sh *SummarizeHandler) Summarize(c *gin.Context) {
	var req struct {
		Ticker string `json:"ticker"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, fmt.Errorf("invalid request body: %w", pkgerrors.ErrInvalidArgument))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		RespondError(c, fmt.Errorf("text is required: %w", pkgerrors.ErrInvalidArgument))
		return
	}

	summary, err := sh.summarizerService.Summarize(c.Request.Context(), req.Text, strings.ToUpper(req.Ticker))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"summary": summary})
}
