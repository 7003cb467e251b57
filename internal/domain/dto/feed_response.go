package dto

import (
	"time"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// FeedResponse represents the JSON structure returned by the
// GET /api/v1/news endpoints.
//
// IsLive is true iff at least one attempted provider tier returned real data.
// LastUpdated is an ISO-8601 (RFC 3339) timestamp of when the response was built.
type FeedResponse struct {
	News        []models.NewsItem   `json:"news"`
	Tickers     []models.TickerItem `json:"tickers"`
	IsLive      bool                `json:"isLive" example:"true"`
	LastUpdated string              `json:"lastUpdated" example:"2025-09-18T14:03:00Z"`
}

// NewFeedResponse builds a FeedResponse stamped with now. Nil slices are
// replaced by empty ones so the JSON contract never carries null lists.
func NewFeedResponse(news []models.NewsItem, tickers []models.TickerItem, live bool, now time.Time) FeedResponse {
	if news == nil {
		news = []models.NewsItem{}
	}
	if tickers == nil {
		tickers = []models.TickerItem{}
	}
	return FeedResponse{
		News:        news,
		Tickers:     tickers,
		IsLive:      live,
		LastUpdated: now.UTC().Format(time.RFC3339Nano),
	}
}
