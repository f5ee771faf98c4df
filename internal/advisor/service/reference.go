package service

// symbolInfo is the static profile used when live data is unavailable.
type symbolInfo struct {
	BasePrice float64
	Name      string
}

// knownSymbols maps well-known tickers to simulation base prices and
// display names. Unknown symbols fall back to a base of 100 and the name
// "<SYMBOL> Corporation".
var knownSymbols = map[string]symbolInfo{
	"AAPL":  {BasePrice: 175, Name: "Apple Inc."},
	"MSFT":  {BasePrice: 340, Name: "Microsoft Corporation"},
	"TSLA":  {BasePrice: 248, Name: "Tesla Inc."},
	"NVDA":  {BasePrice: 430, Name: "NVIDIA Corporation"},
	"GOOGL": {BasePrice: 138, Name: "Alphabet Inc."},
	"AMZN":  {BasePrice: 155, Name: "Amazon.com Inc."},
	"META":  {BasePrice: 485, Name: "Meta Platforms Inc."},
}

// companySearchTerms maps tickers to the search term used against news
// providers. Searching by company name returns far more relevant articles
// than searching by ticker.
var companySearchTerms = map[string]string{
	"AAPL":  "Apple",
	"MSFT":  "Microsoft",
	"GOOGL": "Google Alphabet",
	"TSLA":  "Tesla",
	"AMZN":  "Amazon",
	"NVDA":  "NVIDIA",
	"META":  "Meta Facebook",
}

// cannedArticle is a pre-written fallback headline with a fixed sentiment.
type cannedArticle struct {
	Title       string
	Description string
	Source      string
	Sentiment   string
}

// cannedNews holds per-symbol fallback article sets served when the news
// provider is unreachable or returns nothing usable.
var cannedNews = map[string][]cannedArticle{
	"AAPL": {
		{
			Title:       "Apple announces breakthrough in AI chip technology",
			Description: "The company unveiled a new neural engine architecture expected to power the next generation of on-device intelligence.",
			Source:      "TechCrunch",
			Sentiment:   "positive",
		},
		{
			Title:       "iPhone sales exceed expectations in Q4",
			Description: "Holiday-quarter shipments came in ahead of analyst estimates on strong demand in emerging markets.",
			Source:      "Reuters",
			Sentiment:   "positive",
		},
		{
			Title:       "Apple services revenue hits new record",
			Description: "Subscriptions across the App Store, iCloud and Apple TV+ pushed the services segment to an all-time high.",
			Source:      "CNBC",
			Sentiment:   "positive",
		},
	},
	"TSLA": {
		{
			Title:       "Tesla Cybertruck production ramps up faster than expected",
			Description: "Output at Gigafactory Texas is ahead of internal targets as the company works through its reservation backlog.",
			Source:      "Electrek",
			Sentiment:   "positive",
		},
		{
			Title:       "EV competition intensifies with new rivals",
			Description: "Legacy automakers and Chinese entrants continue to put pressure on margins across the electric vehicle market.",
			Source:      "MarketWatch",
			Sentiment:   "negative",
		},
		{
			Title:       "Tesla expands Supercharger network globally",
			Description: "Hundreds of new fast-charging stations opened this quarter across North America, Europe and Asia.",
			Source:      "Tesla Blog",
			Sentiment:   "positive",
		},
	},
	"NVDA": {
		{
			Title:       "NVIDIA unveils next-gen AI chips for data centers",
			Description: "The new accelerator family promises a major leap in training performance for large language models.",
			Source:      "VentureBeat",
			Sentiment:   "positive",
		},
		{
			Title:       "Major cloud providers increase NVIDIA orders",
			Description: "Hyperscalers are expanding GPU capacity commitments amid sustained demand for AI workloads.",
			Source:      "Bloomberg",
			Sentiment:   "positive",
		},
	},
	"MSFT": {
		{
			Title:       "Microsoft cloud growth beats analyst estimates",
			Description: "Azure revenue accelerated again this quarter as enterprise AI adoption drove consumption higher.",
			Source:      "Reuters",
			Sentiment:   "positive",
		},
		{
			Title:       "Copilot integration expands across Office suite",
			Description: "The company is rolling out AI assistance to more productivity apps as part of its enterprise push.",
			Source:      "The Verge",
			Sentiment:   "positive",
		},
	},
}

// genericCannedNews is served for symbols without a dedicated canned set.
var genericCannedNews = []cannedArticle{
	{
		Title:       "Market analysts maintain coverage amid mixed signals",
		Description: "Trading volumes stayed near seasonal averages this week as investors awaited fresh economic data.",
		Source:      "MarketWatch",
		Sentiment:   "neutral",
	},
	{
		Title:       "Quarterly earnings season brings sector-wide attention",
		Description: "Investors are watching upcoming reports for guidance revisions across the industry.",
		Source:      "Reuters",
		Sentiment:   "neutral",
	},
}
