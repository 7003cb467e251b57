package models

// RawNewsArticle is a news article as returned by the equity provider's
// market-news and company-news endpoints.
//
// Related is a comma-delimited list of ticker symbols (e.g., "AAPL,MSFT").
type RawNewsArticle struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Datetime int64  `json:"datetime"` // UNIX seconds
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	Related  string `json:"related"`
	Image    string `json:"image"`
	URL      string `json:"url"`
}

// RawQuote is the latest trading snapshot for one symbol.
type RawQuote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// Valid reports whether the quote carries a usable price. The provider answers
// unknown symbols with an all-zero body instead of an error.
func (q RawQuote) Valid() bool {
	return q.Current > 0
}

// RawSentiment is the news-sentiment payload for one symbol.
// Percentages are fractions in [0,1].
type RawSentiment struct {
	Symbol                      string             `json:"symbol"`
	Sentiment                   SentimentBreakdown `json:"sentiment"`
	Buzz                        Buzz               `json:"buzz"`
	CompanyNewsScore            float64            `json:"companyNewsScore"`
	SectorAverageBullishPercent float64            `json:"sectorAverageBullishPercent"`
	SectorAverageNewsScore      float64            `json:"sectorAverageNewsScore"`
}

// Valid reports whether the payload carries a bullish/bearish split. Symbols
// without coverage come back as an empty body with zero percentages.
func (s RawSentiment) Valid() bool {
	return s.Sentiment.BullishPercent+s.Sentiment.BearishPercent > 0
}

// SentimentBreakdown is the bullish/bearish split of recent coverage.
type SentimentBreakdown struct {
	BearishPercent float64 `json:"bearishPercent"`
	BullishPercent float64 `json:"bullishPercent"`
}

// Buzz measures how much a symbol is being covered.
type Buzz struct {
	ArticlesInLastWeek int     `json:"articlesInLastWeek"`
	BuzzScore          float64 `json:"buzz"`
	WeeklyAverage      float64 `json:"weeklyAverage"`
}

// Candle status values.
const (
	CandleStatusOK     = "ok"
	CandleStatusNoData = "no_data"
)

// RawCandleSeries holds parallel OHLCV arrays for one symbol and resolution.
type RawCandleSeries struct {
	Close     []float64 `json:"c"`
	High      []float64 `json:"h"`
	Low       []float64 `json:"l"`
	Open      []float64 `json:"o"`
	Status    string    `json:"s"`
	Timestamp []int64   `json:"t"`
	Volume    []float64 `json:"v"`
}

// RawCoin is one row of the crypto provider's coins/markets listing.
type RawCoin struct {
	ID                       string         `json:"id"`
	Symbol                   string         `json:"symbol"`
	Name                     string         `json:"name"`
	CurrentPrice             float64        `json:"current_price"`
	PriceChange24h           float64        `json:"price_change_24h"`
	PriceChangePercentage24h float64        `json:"price_change_percentage_24h"`
	MarketCapRank            int            `json:"market_cap_rank"`
	SparklineIn7d            *CoinSparkline `json:"sparkline_in_7d,omitempty"`
}

// CoinSparkline is the hourly 7-day price series of a coin.
type CoinSparkline struct {
	Price []float64 `json:"price"`
}

// SparklinePrices returns the 7-day price series, or nil when absent.
func (c RawCoin) SparklinePrices() []float64 {
	if c.SparklineIn7d == nil {
		return nil
	}
	return c.SparklineIn7d.Price
}
