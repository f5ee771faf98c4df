package dto

// PolygonAggsResponse is the response from the Polygon daily aggregates
// endpoint (/v2/aggs/ticker/{symbol}/range/1/day/{date}/{date}).
type PolygonAggsResponse struct {
	Ticker       string             `json:"ticker"`
	ResultsCount int                `json:"resultsCount"`
	Results      []PolygonAggResult `json:"results"`
	Status       string             `json:"status"`
}

// PolygonAggResult is a single OHLCV bar.
type PolygonAggResult struct {
	Open      float64 `json:"o"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Close     float64 `json:"c"`
	Volume    float64 `json:"v"`
	Timestamp int64   `json:"t"`
}

// PolygonLastTradeResponse is the response from the Polygon last trade
// endpoint (/v2/last/trade/{symbol}).
type PolygonLastTradeResponse struct {
	Status  string            `json:"status"`
	Results *PolygonLastTrade `json:"results"`
}

// PolygonLastTrade carries the most recent trade for a symbol.
type PolygonLastTrade struct {
	Price float64 `json:"p"`
	Size  float64 `json:"s"`
}

// PolygonTickerDetailsResponse is the response from the Polygon ticker
// reference endpoint (/v3/reference/tickers/{symbol}).
type PolygonTickerDetailsResponse struct {
	Status  string                `json:"status"`
	Results *PolygonTickerDetails `json:"results"`
}

// PolygonTickerDetails carries company reference metadata.
type PolygonTickerDetails struct {
	Ticker    string  `json:"ticker"`
	Name      string  `json:"name"`
	MarketCap float64 `json:"market_cap"`
}
