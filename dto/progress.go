package dto

type AddMinutesRequest struct {
	Minutes int `json:"minutes" binding:"required,min=1"`
}

// DayEntry is one chart-ready point: the day-of-week label plus the
// minutes logged that day (zero when no log exists).
type DayEntry struct {
	Label   string `json:"label"`
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

type ProgressSummary struct {
	TotalMinutes   int        `json:"total_minutes"`
	Streak         int        `json:"streak"`
	SessionsPerDay float64    `json:"sessions_per_day"`
	Weekly         []DayEntry `json:"weekly"`
}
