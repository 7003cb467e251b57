package api

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finpulse/internal/middleware"
	"github.com/guttosm/finpulse/internal/service"
)

// symbolPattern accepts equity and crypto tickers such as AAPL, BRK.B or BTC.
var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]{0,9}$`)

var errInvalidSymbol = errors.New("symbol must start with a letter and contain at most 10 letters, digits, dots or dashes")

// Handler provides HTTP handlers for the news feed endpoints.
//
// Responsibilities:
//   - Validate path parameters
//   - Delegate feed assembly to the FeedService
//   - Return the feed as JSON
//
// The feed endpoints never answer with an upstream error: the service always
// produces a complete response, degrading to fixtures when providers fail.
type Handler struct {
	svc service.FeedService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.FeedService): Orchestrator used to build feed responses.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.FeedService) *Handler {
	return &Handler{svc: svc}
}

// GetNews handles GET /api/v1/news requests.
//
// Responses:
//   - 200 OK: Always. isLive reports whether any provider contributed live data.
//
// GetNews godoc
// @Summary      Aggregated news feed
// @Description  Returns normalized news and market tickers merged from the equity and crypto providers, falling back to fixtures when they are unavailable
// @Tags         news
// @Produce      json
// @Success      200  {object}  dto.FeedResponse  "Success"
// @Router       /api/v1/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetFeed(c.Request.Context()))
}

// GetSymbolNews handles GET /api/v1/news/:symbol requests.
//
// Path Parameters:
//   - symbol (string, required): Ticker symbol (e.g., "AAPL"), case-insensitive.
//
// Responses:
//   - 200 OK: News about the symbol, or the head of the main feed when none mention it.
//   - 400 Bad Request: Malformed symbol.
//
// GetSymbolNews godoc
// @Summary      News for one symbol
// @Description  Returns company news for a tracked symbol, or the main feed filtered by ticker
// @Tags         news
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol" example(AAPL)
// @Success      200     {object}  dto.FeedResponse   "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/news/{symbol} [get]
func (h *Handler) GetSymbolNews(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if !symbolPattern.MatchString(symbol) {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid symbol", errInvalidSymbol)
		return
	}

	c.JSON(http.StatusOK, h.svc.GetSymbolFeed(c.Request.Context(), symbol))
}
