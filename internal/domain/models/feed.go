package models

// Sentiment classifies the expected direction implied by a news item.
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

// Category is the topic bucket a news item belongs to.
type Category string

const (
	CategoryTechnology Category = "technology"
	CategoryFinance    Category = "finance"
	CategoryEnergy     Category = "energy"
	CategoryHealthcare Category = "healthcare"
)

// Provenance tells consumers where a news item's content came from.
type Provenance string

const (
	// ProvenanceLive marks content fetched from a provider.
	ProvenanceLive Provenance = "live"
	// ProvenanceSynthetic marks headlines generated from live prices.
	ProvenanceSynthetic Provenance = "synthetic"
	// ProvenanceFixture marks static fallback content.
	ProvenanceFixture Provenance = "fixture"
)

// NewsItem is the normalized news unit returned to consumers.
//
// Invariants:
//   - SentimentScore is within [0,1].
//   - SparklineData has at least two points, most recent last.
//
// swagger:model NewsItem
type NewsItem struct {
	ID             string     `json:"id" example:"7311202"`
	Ticker         string     `json:"ticker" example:"AAPL"`
	CompanyName    string     `json:"companyName" example:"Apple Inc."`
	Title          string     `json:"title"`
	Summary        string     `json:"summary"`
	Source         string     `json:"source" example:"Reuters"`
	Time           string     `json:"time" example:"12 min ago"`
	URL            string     `json:"url"`
	ImageURL       string     `json:"imageUrl"`
	Sentiment      Sentiment  `json:"sentiment" example:"bullish"`
	SentimentScore float64    `json:"sentimentScore" example:"0.72"`
	PriceChange    float64    `json:"priceChange" example:"2.2"`
	CurrentPrice   float64    `json:"currentPrice" example:"189.84"`
	SparklineData  []float64  `json:"sparklineData"`
	Category       Category   `json:"category" example:"technology"`
	Provenance     Provenance `json:"provenance" example:"live"`
}

// TickerItem is one entry of the market ticker band.
//
// swagger:model TickerItem
type TickerItem struct {
	Symbol        string  `json:"symbol" example:"BTC"`
	Name          string  `json:"name" example:"Bitcoin"`
	Price         float64 `json:"price" example:"67250.12"`
	Change        float64 `json:"change" example:"1220.5"`
	ChangePercent float64 `json:"changePercent" example:"1.85"`
}
