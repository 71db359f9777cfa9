package domain

import "time"

// ExchangeRates снимок курсов валют (база EUR)
type ExchangeRates struct {
	Base      Currency
	Date      string
	Rates     map[string]float64
	FetchedAt time.Time
}

// Rate returns the rate of c against the base currency
func (r *ExchangeRates) Rate(c Currency) (float64, bool) {
	if r == nil {
		return 0, false
	}
	if c == r.Base {
		return 1, true
	}
	v, ok := r.Rates[string(c)]
	return v, ok && v > 0
}

// ToReporting конвертирует сумму в валюту отчетности (MDL).
// Курсы заданы относительно EUR: сумма в USD делится на курс USD и умножается на курс MDL.
func (r *ExchangeRates) ToReporting(amount float64, c Currency) (float64, bool) {
	if c == ReportingCurrency {
		return amount, true
	}
	target, ok := r.Rate(ReportingCurrency)
	if !ok {
		return 0, false
	}
	source, ok := r.Rate(c)
	if !ok {
		return 0, false
	}
	return amount / source * target, true
}
