package services

import (
	"fmt"
	"testing"

	model "taskflow.app/taskflow/pkg/models"
)

func dayTasks(date string, completed, total int) []model.Task {
	tasks := make([]model.Task, 0, total)
	for i := 0; i < total; i++ {
		tasks = append(tasks, model.Task{
			ID:        fmt.Sprintf("%s-%d", date, i),
			Title:     "Task",
			Date:      date,
			Completed: i < completed,
		})
	}
	return tasks
}

func TestCalculateStatsEmpty(t *testing.T) {
	stats := CalculateStats(nil)

	expected := model.MonthlyStats{}
	if stats != expected {
		t.Errorf("expected zero stats for empty input, got %+v", stats)
	}
}

func TestCalculateStatsInvariants(t *testing.T) {
	for completed := 0; completed <= 7; completed++ {
		stats := CalculateStats(dayTasks("2024-03-05", completed, 7))

		if stats.Completed+stats.Incomplete != stats.Total {
			t.Errorf("completed %d + incomplete %d != total %d",
				stats.Completed, stats.Incomplete, stats.Total)
		}
		if stats.CompletionPercentage < 0 || stats.CompletionPercentage > 100 {
			t.Errorf("percentage out of range: %d", stats.CompletionPercentage)
		}
	}
}

func TestCalculateStatsRounding(t *testing.T) {
	// 1/3 rounds to 33, 2/3 rounds to 67
	if got := CalculateStats(dayTasks("2024-03-05", 1, 3)).CompletionPercentage; got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
	if got := CalculateStats(dayTasks("2024-03-05", 2, 3)).CompletionPercentage; got != 67 {
		t.Errorf("expected 67, got %d", got)
	}
}

func TestDailyBreakdownOmitsEmptyDays(t *testing.T) {
	tasks := append(dayTasks("2024-03-01", 1, 2), dayTasks("2024-03-15", 0, 1)...)

	breakdown := CalculateDailyBreakdown(tasks, "2024-03")

	if len(breakdown) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(breakdown))
	}
	if breakdown[0].Date != "2024-03-01" || breakdown[1].Date != "2024-03-15" {
		t.Errorf("expected ascending dates 2024-03-01, 2024-03-15; got %s, %s",
			breakdown[0].Date, breakdown[1].Date)
	}
	for _, day := range breakdown {
		if day.Total == 0 {
			t.Errorf("day %s has zero tasks but appears in breakdown", day.Date)
		}
	}
}

func TestDailyBreakdownIgnoresOtherMonths(t *testing.T) {
	tasks := append(dayTasks("2024-03-01", 1, 1), dayTasks("2024-04-01", 1, 1)...)

	breakdown := CalculateDailyBreakdown(tasks, "2024-03")

	if len(breakdown) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(breakdown))
	}
	if breakdown[0].Date != "2024-03-01" {
		t.Errorf("expected 2024-03-01, got %s", breakdown[0].Date)
	}
}

func TestGenerateMonthlyReport(t *testing.T) {
	// 10 tasks in March, 7 completed, plus noise in April.
	tasks := dayTasks("2024-03-05", 7, 10)
	tasks = append(tasks, dayTasks("2024-04-05", 0, 3)...)

	report := GenerateMonthlyReport(tasks, "2024-03")

	if report.Month != "2024-03" {
		t.Errorf("expected month 2024-03, got %s", report.Month)
	}

	expected := model.MonthlyStats{Total: 10, Completed: 7, Incomplete: 3, CompletionPercentage: 70}
	if report.Stats != expected {
		t.Errorf("expected stats %+v, got %+v", expected, report.Stats)
	}

	if len(report.IncompleteTasks) != 3 {
		t.Errorf("expected 3 incomplete tasks, got %d", len(report.IncompleteTasks))
	}
	for _, task := range report.IncompleteTasks {
		if task.Completed {
			t.Errorf("completed task %s listed as incomplete", task.ID)
		}
	}

	if grade := CompletionGrade(report.Stats.CompletionPercentage); grade.Grade != "Great" {
		t.Errorf("expected grade Great, got %s", grade.Grade)
	}
}

func TestCompletionGradeBoundaries(t *testing.T) {
	cases := []struct {
		percentage int
		grade      string
	}{
		{100, "Outstanding"},
		{90, "Outstanding"},
		{89, "Great"},
		{70, "Great"},
		{69, "Good"},
		{50, "Good"},
		{49, "Keep Going"},
		{0, "Keep Going"},
	}

	for _, tc := range cases {
		if got := CompletionGrade(tc.percentage).Grade; got != tc.grade {
			t.Errorf("%d%%: expected %s, got %s", tc.percentage, tc.grade, got)
		}
	}
}

func TestCurrentStreakBrokenByMostRecentPartialDay(t *testing.T) {
	// Mar 1: 2/2, Mar 2: 3/3, Mar 3: 1/2. The most recent day is
	// partial, so the streak is 0 regardless of the earlier days.
	tasks := dayTasks("2024-03-01", 2, 2)
	tasks = append(tasks, dayTasks("2024-03-02", 3, 3)...)
	tasks = append(tasks, dayTasks("2024-03-03", 1, 2)...)

	breakdown := CalculateDailyBreakdown(tasks, "2024-03")
	if got := CurrentStreak(breakdown); got != 0 {
		t.Errorf("expected streak 0, got %d", got)
	}
}

func TestCurrentStreakSkipsEmptyDays(t *testing.T) {
	// Fully-completed days with a task-free gap between them: the gap
	// is absent from the breakdown and does not break the streak.
	tasks := dayTasks("2024-03-01", 2, 2)
	tasks = append(tasks, dayTasks("2024-03-05", 1, 1)...)
	tasks = append(tasks, dayTasks("2024-03-09", 3, 3)...)

	breakdown := CalculateDailyBreakdown(tasks, "2024-03")
	if got := CurrentStreak(breakdown); got != 3 {
		t.Errorf("expected streak 3, got %d", got)
	}
}

func TestCurrentStreakStopsAtFirstPartialDay(t *testing.T) {
	tasks := dayTasks("2024-03-01", 1, 1)
	tasks = append(tasks, dayTasks("2024-03-02", 0, 2)...) // breaks here
	tasks = append(tasks, dayTasks("2024-03-03", 2, 2)...)
	tasks = append(tasks, dayTasks("2024-03-04", 1, 1)...)

	breakdown := CalculateDailyBreakdown(tasks, "2024-03")
	if got := CurrentStreak(breakdown); got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestCurrentStreakEmptyBreakdown(t *testing.T) {
	if got := CurrentStreak(nil); got != 0 {
		t.Errorf("expected streak 0, got %d", got)
	}
}
