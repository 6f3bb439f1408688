package services

import (
	"math"
	"strings"

	"taskflow.app/taskflow/internal/dates"
	model "taskflow.app/taskflow/pkg/models"
)

// The report generator is pure aggregation over an immutable task
// slice: no stored state, no I/O, recomputed on every request.

func CalculateStats(tasks []model.Task) model.MonthlyStats {
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return model.MonthlyStats{
		Total:                total,
		Completed:            completed,
		Incomplete:           total - completed,
		CompletionPercentage: percentage,
	}
}

// CalculateDailyBreakdown walks every calendar day of the month in
// ascending order and keeps only days that have at least one task.
func CalculateDailyBreakdown(tasks []model.Task, yearMonth string) []model.DailyBreakdown {
	days, err := dates.DaysInMonth(yearMonth)
	if err != nil {
		return []model.DailyBreakdown{}
	}

	breakdown := []model.DailyBreakdown{}
	for _, day := range days {
		dayTasks := []model.Task{}
		for _, t := range tasks {
			if t.Date == day {
				dayTasks = append(dayTasks, t)
			}
		}
		if len(dayTasks) == 0 {
			continue
		}

		breakdown = append(breakdown, model.DailyBreakdown{
			Date:         day,
			MonthlyStats: CalculateStats(dayTasks),
		})
	}

	return breakdown
}

func GenerateMonthlyReport(tasks []model.Task, yearMonth string) model.MonthlyReport {
	monthTasks := []model.Task{}
	for _, t := range tasks {
		if strings.HasPrefix(t.Date, yearMonth) {
			monthTasks = append(monthTasks, t)
		}
	}

	incomplete := []model.Task{}
	for _, t := range monthTasks {
		if !t.Completed {
			incomplete = append(incomplete, t)
		}
	}

	return model.MonthlyReport{
		Month:           yearMonth,
		Stats:           CalculateStats(monthTasks),
		DailyBreakdown:  CalculateDailyBreakdown(monthTasks, yearMonth),
		IncompleteTasks: incomplete,
	}
}

// CompletionGrade buckets a percentage into its qualitative tier.
// Boundaries are inclusive at the lower bound of each tier.
func CompletionGrade(percentage int) model.CompletionGrade {
	switch {
	case percentage >= 90:
		return model.CompletionGrade{Grade: "Outstanding", Tier: "outstanding"}
	case percentage >= 70:
		return model.CompletionGrade{Grade: "Great", Tier: "great"}
	case percentage >= 50:
		return model.CompletionGrade{Grade: "Good", Tier: "good"}
	default:
		return model.CompletionGrade{Grade: "Keep Going", Tier: "keep-going"}
	}
}

// CurrentStreak counts consecutive fully-completed days, most recent
// first, over an ascending daily breakdown. Days with no tasks are
// absent from the breakdown, so they neither break nor extend the
// streak; the first partial day ends it.
func CurrentStreak(breakdown []model.DailyBreakdown) int {
	streak := 0
	for i := len(breakdown) - 1; i >= 0; i-- {
		day := breakdown[i]
		if day.Total == 0 || day.CompletionPercentage < 100 {
			break
		}
		streak++
	}
	return streak
}
