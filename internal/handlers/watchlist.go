package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/services"
)

type WatchlistHandler struct {
	watchlistService services.WatchlistService
}

func NewWatchlistHandler(watchlistService services.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

func (wh *WatchlistHandler) Add(c *gin.Context) {
	var req struct {
		Ticker string `json:"ticker"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, fmt.Errorf("invalid request body: %w", pkgerrors.ErrInvalidArgument))
		return
	}
	item, err := wh.watchlistService.Add(c.Request.Context(), req.Ticker)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, item)
}

func (wh *WatchlistHandler) Remove(c *gin.Context) {
	if err := wh.watchlistService.Remove(c.Request.Context(), c.Param("ticker")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"removed": true})
}

func (wh *WatchlistHandler) List(c *gin.Context) {
	items, err := wh.watchlistService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}
