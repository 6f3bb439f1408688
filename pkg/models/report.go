package model

// MonthlyStats are aggregate completion figures over a set of tasks.
type MonthlyStats struct {
	Total                int `json:"total"`
	Completed            int `json:"completed"`
	Incomplete           int `json:"incomplete"`
	CompletionPercentage int `json:"completion_percentage"`
}

// DailyBreakdown carries the stats of a single day that has tasks.
type DailyBreakdown struct {
	Date string `json:"date"` // YYYY-MM-DD
	MonthlyStats
}

// MonthlyReport is a derived read-only snapshot for one month. It is
// recomputed on every request and never persisted.
type MonthlyReport struct {
	Month           string           `json:"month"` // YYYY-MM
	Stats           MonthlyStats     `json:"stats"`
	DailyBreakdown  []DailyBreakdown `json:"daily_breakdown"`
	IncompleteTasks []Task           `json:"incomplete_tasks"`
}

// CompletionGrade is the qualitative label for a completion percentage.
type CompletionGrade struct {
	Grade string `json:"grade"`
	Tier  string `json:"tier"`
}
