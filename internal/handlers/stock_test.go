package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
	"github.com/finbrief/finbrief-backend/internal/types"
)

type fakeDetailsService struct {
	details types.StockDetails
	err     error
	last    string
}

func (f *fakeDetailsService) GetDetails(ctx context.Context, ticker string) (types.StockDetails, error) {
	f.last = ticker
	if f.err != nil {
		return types.StockDetails{}, f.err
	}
	return f.details, nil
}

func newStockRouter(svc *fakeDetailsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stock/:ticker", NewStockHandler(svc).GetDetails)
	return r
}

func TestGetDetailsReturnsPayload(t *testing.T) {
	svc := &fakeDetailsService{details: types.StockDetails{
		Ticker:     "AAPL",
		Quote:      types.QuoteData{Price: 187.34},
		FilingDate: "2026-05-12",
		Summary:    "generating",
	}}
	r := newStockRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/stock/aapl", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "aapl", svc.last)

	var payload types.StockDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "AAPL", payload.Ticker)
	assert.Equal(t, "2026-05-12", payload.FilingDate)
	assert.Equal(t, "generating", payload.Summary)
	assert.Equal(t, 187.34, payload.Quote.Price)
}

func TestGetDetailsUnknownTicker(t *testing.T) {
	svc := &fakeDetailsService{err: fmt.Errorf("ticker not found: %w", pkgerrors.ErrNotFound)}
	r := newStockRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/stock/ZZZZ", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "not_found", envelope.Error.Code)
}

func TestGetDetailsUpstreamFailure(t *testing.T) {
	svc := &fakeDetailsService{err: fmt.Errorf("edgar unavailable: %w", pkgerrors.ErrUpstream)}
	r := newStockRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/stock/AAPL", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}
