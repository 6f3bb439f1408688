package http

import (
	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, h *Handler) {
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.POST("/tasks/:id/toggle", h.ToggleTask)
	e.DELETE("/tasks/:id", h.DeleteTask)

	e.GET("/reports/:month", h.MonthlyReport)

	e.GET("/status", h.Status)
	e.DELETE("/status/error", h.ClearError)
}
