package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// The response envelopes below are a compatibility contract with existing
// callers and must not change shape.

type successEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

type errorEnvelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
}

// Success writes the canonical success envelope with HTTP 200.
func Success(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, successEnvelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

// Error writes the canonical error envelope with the given HTTP status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorEnvelope{
		Success:    false,
		Message:    message,
		StatusCode: status,
		Timestamp:  timestamp(),
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
