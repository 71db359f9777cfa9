package exchangerates

// ratesResponse ответ api.exchangerate-api.com/v4/latest/EUR
type ratesResponse struct {
	Provider        string             `json:"provider"`
	Base            string             `json:"base"`
	Date            string             `json:"date"`
	TimeLastUpdated int64              `json:"time_last_updated"`
	Rates           map[string]float64 `json:"rates"`
}
