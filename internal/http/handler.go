package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskflow.app/taskflow/internal/errors"
	"taskflow.app/taskflow/internal/http/validators"
	"taskflow.app/taskflow/internal/services"
	model "taskflow.app/taskflow/pkg/models"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var form model.TaskFormData
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskForm(&form); err != nil {
		return err
	}

	task, err := h.taskService.Add(c.Request().Context(), form)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	var patch model.TaskPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskPatch(&patch); err != nil {
		return err
	}

	if err := h.taskService.Update(c.Request().Context(), id, patch); err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ToggleTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	if err := h.taskService.Toggle(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrTaskIDRequired.Message)
	}

	if err := h.taskService.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// ListTasks returns tasks filtered by ?date= or ?month=, or the whole
// collection when neither is given.
func (h *Handler) ListTasks(c echo.Context) error {
	date := c.QueryParam("date")
	month := c.QueryParam("month")

	var tasks []model.Task
	switch {
	case date != "":
		tasks = h.taskService.ByDate(date)
	case month != "":
		if err := validators.ValidateMonth(month); err != nil {
			return err
		}
		tasks = h.taskService.ByMonth(month)
	default:
		tasks = h.taskService.Tasks()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

// MonthlyReport computes the month's report on demand, with the
// completion grade and current streak derived from it.
func (h *Handler) MonthlyReport(c echo.Context) error {
	month := c.Param("month")
	if err := validators.ValidateMonth(month); err != nil {
		return err
	}

	report := services.GenerateMonthlyReport(h.taskService.Tasks(), month)

	return c.JSON(http.StatusOK, echo.Map{
		"report": report,
		"grade":  services.CompletionGrade(report.Stats.CompletionPercentage),
		"streak": services.CurrentStreak(report.DailyBreakdown),
	})
}

// Status exposes the loaded flag and the current error slot.
func (h *Handler) Status(c echo.Context) error {
	status := echo.Map{
		"loaded": h.taskService.Loaded(),
		"error":  nil,
	}
	if err := h.taskService.Err(); err != nil {
		status["error"] = err.Error()
	}
	return c.JSON(http.StatusOK, status)
}

// ClearError dismisses the current error. It retries nothing.
func (h *Handler) ClearError(c echo.Context) error {
	h.taskService.ClearErr()
	return c.NoContent(http.StatusNoContent)
}
