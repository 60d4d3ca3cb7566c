package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker-api/internal/core/ports"
)

// envelope is the uniform response wrapper for single-record endpoints.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// listEnvelope wraps paginated list responses. Count is the returned page
// size; Total is the number of records matching the filter regardless of
// pagination.
type listEnvelope struct {
	Success    bool           `json:"success"`
	Count      int            `json:"count"`
	Total      int64          `json:"total"`
	Pagination ports.PageInfo `json:"pagination"`
	Data       any            `json:"data"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, envelope{Success: true, Message: message, Data: data})
}

func respondList(c echo.Context, code, count int, total int64, page ports.PageInfo, data any) error {
	return c.JSON(code, listEnvelope{
		Success:    true,
		Count:      count,
		Total:      total,
		Pagination: page,
		Data:       data,
	})
}
