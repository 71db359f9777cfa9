package models

// RatesInfo снимок курсов, использованный для пересчета выручки
type RatesInfo struct {
	Date     string  `json:"date"`
	EURtoMDL float64 `json:"eurToMdl"`
	USDtoMDL float64 `json:"usdToMdl"`
	Stale    bool    `json:"stale"`
}

// StatsResponse сводная статистика для панели администратора
type StatsResponse struct {
	TotalBookings   int            `json:"totalBookings"`
	StatusCounts    map[string]int `json:"statusCounts"`
	PendingRequests int            `json:"pendingRequests"`
	CompletedEvents int            `json:"completedEvents"`
	UpcomingEvents  int            `json:"upcomingEvents"`
	EventTypeCounts map[string]int `json:"eventTypeCounts"`

	TotalRevenue    float64 `json:"totalRevenue"`
	RevenueCurrency string  `json:"revenueCurrency"`
	// UnconvertedBookings завершенные заявки в валюте, которую не удалось пересчитать
	UnconvertedBookings int `json:"unconvertedBookings"`

	Rates            *RatesInfo `json:"rates,omitempty"`
	RatesUnavailable bool       `json:"ratesUnavailable"`
}
