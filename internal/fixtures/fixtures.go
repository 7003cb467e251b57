// Package fixtures is the static dataset served when providers are
// unreachable or not configured. Every accessor returns a fresh copy.
package fixtures

import "github.com/guttosm/finpulse/internal/domain/models"

var fixedSparkline = []float64{100, 101, 102, 103, 104, 103, 105, 106, 107, 108}

func spark() []float64 {
	out := make([]float64, len(fixedSparkline))
	copy(out, fixedSparkline)
	return out
}

func item(id, ticker, company, title, summary, source, ago, url string, s models.Sentiment, score, change, price float64, cat models.Category) models.NewsItem {
	return models.NewsItem{
		ID:             id,
		Ticker:         ticker,
		CompanyName:    company,
		Title:          title,
		Summary:        summary,
		Source:         source,
		Time:           ago,
		URL:            url,
		ImageURL:       "",
		Sentiment:      s,
		SentimentScore: score,
		PriceChange:    change,
		CurrentPrice:   price,
		SparklineData:  spark(),
		Category:       cat,
		Provenance:     models.ProvenanceFixture,
	}
}

func equityNews() []models.NewsItem {
	return []models.NewsItem{
		item("mock-1", "AAPL", "Apple Inc.",
			"Apple expands on-device AI features across its product line",
			"Apple outlined a broader rollout of on-device models, which analysts expect to support upgrade demand into the holiday quarter.",
			"Reuters", "12 min ago", "https://example.com/news/apple-ai",
			models.SentimentBullish, 0.72, 2.2, 189.84, models.CategoryTechnology),
		item("mock-2", "NVDA", "NVIDIA Corp.",
			"NVIDIA data-center revenue beats estimates on accelerator demand",
			"Hyperscaler spending kept data-center sales ahead of consensus for another quarter.",
			"Bloomberg", "34 min ago", "https://example.com/news/nvidia-datacenter",
			models.SentimentBullish, 0.85, 3.5, 912.4, models.CategoryTechnology),
		item("mock-3", "TSLA", "Tesla Inc.",
			"Tesla deliveries fall short as price cuts weigh on margins",
			"Quarterly deliveries missed expectations while average selling prices continued to slide.",
			"CNBC", "1 hr ago", "https://example.com/news/tesla-deliveries",
			models.SentimentBearish, 0.68, -1.8, 242.1, models.CategoryTechnology),
		item("mock-4", "JPM", "JPMorgan Chase",
			"JPMorgan lifts net interest income outlook for the year",
			"The bank raised guidance on stronger deposit margins and steady loan growth.",
			"Financial Times", "2 hr ago", "https://example.com/news/jpm-nii",
			models.SentimentBullish, 0.61, 1.1, 198.3, models.CategoryFinance),
		item("mock-5", "XOM", "Exxon Mobil",
			"Exxon output climbs as oil prices slip on supply concerns",
			"Higher Permian production offset a softer crude price environment.",
			"Reuters Energy Desk", "3 hr ago", "https://example.com/news/xom-output",
			models.SentimentBearish, 0.57, -0.7, 112.6, models.CategoryEnergy),
		item("mock-6", "MSFT", "Microsoft",
			"Microsoft cloud growth steadies as AI workloads scale",
			"Azure growth held in the high twenties with AI services contributing a rising share.",
			"The Verge", "5 hr ago", "https://example.com/news/msft-azure",
			models.SentimentBullish, 0.66, 0.9, 421.5, models.CategoryTechnology),
		item("mock-7", "META", "Meta Platforms",
			"Meta raises capital spending plans for AI infrastructure",
			"Investors weighed higher spending against continued advertising strength.",
			"Wall Street Journal", "8 hr ago", "https://example.com/news/meta-capex",
			models.SentimentNeutral, 0.5, -0.2, 502.8, models.CategoryTechnology),
		item("mock-8", "AMZN", "Amazon",
			"Amazon Web Services signs multi-year deal with major bank",
			"The agreement moves core banking workloads onto AWS over five years.",
			"Bloomberg", "1d ago", "https://example.com/news/aws-bank",
			models.SentimentBullish, 0.63, 1.3, 183.2, models.CategoryFinance),
	}
}

func cryptoNews() []models.NewsItem {
	return []models.NewsItem{
		item("mock-crypto-1", "BTC", "Bitcoin",
			"Bitcoin holds above key support as ETF inflows continue",
			"Spot ETF demand kept bitcoin steady despite broader risk-off moves.",
			"CoinDesk", "20 min ago", "https://example.com/news/btc-etf",
			models.SentimentBullish, 0.7, 1.6, 67250, models.CategoryTechnology),
		item("mock-crypto-2", "ETH", "Ethereum",
			"Ethereum slips as network fees fall to multi-year lows",
			"Lower on-chain activity weighed on sentiment around the asset.",
			"The Block", "2 hr ago", "https://example.com/news/eth-fees",
			models.SentimentBearish, 0.6, -1.2, 3420, models.CategoryTechnology),
		item("mock-crypto-3", "SOL", "Solana",
			"Solana rallies on rising decentralized exchange volume",
			"DEX volume on the network reached a new monthly high.",
			"Decrypt", "6 hr ago", "https://example.com/news/sol-dex",
			models.SentimentBullish, 0.74, 4.8, 152.3, models.CategoryTechnology),
	}
}

func equityTickers() []models.TickerItem {
	return []models.TickerItem{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: 189.84, Change: 4.09, ChangePercent: 2.2},
		{Symbol: "NVDA", Name: "NVIDIA Corp.", Price: 912.4, Change: 30.85, ChangePercent: 3.5},
		{Symbol: "TSLA", Name: "Tesla Inc.", Price: 242.1, Change: -4.44, ChangePercent: -1.8},
		{Symbol: "MSFT", Name: "Microsoft", Price: 421.5, Change: 3.76, ChangePercent: 0.9},
		{Symbol: "META", Name: "Meta Platforms", Price: 502.8, Change: -1.01, ChangePercent: -0.2},
		{Symbol: "AMZN", Name: "Amazon", Price: 183.2, Change: 2.35, ChangePercent: 1.3},
		{Symbol: "JPM", Name: "JPMorgan Chase", Price: 198.3, Change: 2.16, ChangePercent: 1.1},
		{Symbol: "XOM", Name: "Exxon Mobil", Price: 112.6, Change: -0.79, ChangePercent: -0.7},
	}
}

func cryptoTickers() []models.TickerItem {
	return []models.TickerItem{
		{Symbol: "BTC", Name: "Bitcoin", Price: 67250, Change: 1059.06, ChangePercent: 1.6},
		{Symbol: "ETH", Name: "Ethereum", Price: 3420, Change: -41.54, ChangePercent: -1.2},
		{Symbol: "SOL", Name: "Solana", Price: 152.3, Change: 6.98, ChangePercent: 4.8},
	}
}

// Dataset exposes the fixture slices. The zero value is not useful; use Default.
type Dataset struct {
	equityNews    func() []models.NewsItem
	cryptoNews    func() []models.NewsItem
	equityTickers func() []models.TickerItem
	cryptoTickers func() []models.TickerItem
}

// Default returns the built-in fixture dataset.
func Default() *Dataset {
	return &Dataset{
		equityNews:    equityNews,
		cryptoNews:    cryptoNews,
		equityTickers: equityTickers,
		cryptoTickers: cryptoTickers,
	}
}

// EquityNews returns fixture articles about equities only.
func (d *Dataset) EquityNews() []models.NewsItem { return d.equityNews() }

// EquityTickers returns fixture equity quotes.
func (d *Dataset) EquityTickers() []models.TickerItem { return d.equityTickers() }

// AllNews returns every fixture article, crypto first.
func (d *Dataset) AllNews() []models.NewsItem {
	return append(d.cryptoNews(), d.equityNews()...)
}

// AllTickers returns every fixture quote, crypto first.
func (d *Dataset) AllTickers() []models.TickerItem {
	return append(d.cryptoTickers(), d.equityTickers()...)
}
