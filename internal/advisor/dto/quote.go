package dto

// Quote data sources reported to the caller. Fallback data is only
// distinguishable from provider data through Source and LiveData.
const (
	QuoteSourcePolygon   = "polygon.io"
	QuoteSourceSimulated = "simulation"
)

// QuoteResponse is the normalized quote record returned by the stock
// endpoint, regardless of whether it was built from provider data or
// simulated.
type QuoteResponse struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Change        float64  `json:"change"`
	ChangePercent float64  `json:"changePercent"`
	Volume        int64    `json:"volume"`
	High          float64  `json:"high"`
	Low           float64  `json:"low"`
	Open          float64  `json:"open"`
	PreviousClose float64  `json:"previousClose"`
	MarketCap     *float64 `json:"marketCap"`
	LastUpdated   string   `json:"lastUpdated"`
	Source        string   `json:"source"`
	LiveData      bool     `json:"liveData"`
}
