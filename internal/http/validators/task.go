package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"taskflow.app/taskflow/internal/dates"
	model "taskflow.app/taskflow/pkg/models"
)

const (
	maxTitleLen = 120
	maxNotesLen = 500
)

// Form input is validated here, at the boundary; the task service
// trusts its callers and performs no redundant validation.

func ValidateTaskForm(f *model.TaskFormData) error {
	if strings.TrimSpace(f.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if err := validateTitle(f.Title); err != nil {
		return err
	}
	if err := validateNotes(f.Notes); err != nil {
		return err
	}
	if err := validateDate(f.Date); err != nil {
		return err
	}
	return validatePriority(f.Priority)
}

func ValidateTaskPatch(p *model.TaskPatch) error {
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title must not be empty")
		}
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Notes != nil {
		if err := validateNotes(*p.Notes); err != nil {
			return err
		}
	}
	if p.Date != nil {
		if err := validateDate(*p.Date); err != nil {
			return err
		}
	}
	if p.Priority != nil && *p.Priority != "" {
		return validatePriority(p.Priority)
	}
	return nil
}

func ValidateMonth(yearMonth string) error {
	if _, err := dates.ParseMonth(yearMonth); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "month must be in YYYY-MM format")
	}
	return nil
}

func validateTitle(title string) error {
	if len(strings.TrimSpace(title)) > maxTitleLen {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 120 characters")
	}
	return nil
}

func validateNotes(notes string) error {
	if len(strings.TrimSpace(notes)) > maxNotesLen {
		return echo.NewHTTPError(http.StatusBadRequest, "notes must be at most 500 characters")
	}
	return nil
}

func validateDate(date string) error {
	if _, err := dates.Parse(date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	}
	return nil
}

func validatePriority(p *model.Priority) error {
	if p == nil {
		return nil
	}
	switch *p {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return nil
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be low, medium or high")
	}
}
