package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "taskflow.app/taskflow/internal/configs"
	"taskflow.app/taskflow/internal/dates"
	"taskflow.app/taskflow/internal/services"
)

var reportCmd = &cobra.Command{
	Use:   "report <YYYY-MM>",
	Short: "Print the monthly completion report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := args[0]
		if _, err := dates.ParseMonth(month); err != nil {
			return err
		}

		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		taskService := services.NewTaskService(newStore(cfg))

		if err := taskService.Init(context.Background()); err != nil {
			return err
		}

		report := services.GenerateMonthlyReport(taskService.Tasks(), month)
		grade := services.CompletionGrade(report.Stats.CompletionPercentage)
		streak := services.CurrentStreak(report.DailyBreakdown)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Report for %s\n", report.Month)
		fmt.Fprintf(out, "  %d tasks, %d completed, %d pending (%d%% — %s)\n",
			report.Stats.Total,
			report.Stats.Completed,
			report.Stats.Incomplete,
			report.Stats.CompletionPercentage,
			grade.Grade,
		)
		fmt.Fprintf(out, "  current streak: %d day(s)\n", streak)

		for _, day := range report.DailyBreakdown {
			fmt.Fprintf(out, "  %s  %d/%d (%d%%)\n",
				day.Date, day.Completed, day.Total, day.CompletionPercentage)
		}

		if len(report.IncompleteTasks) > 0 {
			fmt.Fprintln(out, "  pending:")
			for _, t := range report.IncompleteTasks {
				fmt.Fprintf(out, "    [%s] %s\n", t.Date, t.Title)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
