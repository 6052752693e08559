package http_util

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/labstack/echo"
)

type ErrorResponse struct {
	Property string `json:"property"`
	Detail   string `json:"detail"`
}

type Validate interface {
	Validate(ctx context.Context) (problems map[string][]string)
}

type HTTPResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type HTTPErrorResponse[T any] struct {
	HTTPResponse[T]
	Errors []ErrorResponse `json:"errors"`
}

func Encode[T any](c echo.Context, status int, v T) error {
	return c.JSON(status, v)
}

func Decode[T any](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func DecodeBody[T any](body []byte, v T) (T, error) {
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// Problems flattens a Validate problem map into the wire error list.
func Problems(problems map[string][]string) []ErrorResponse {
	out := make([]ErrorResponse, 0, len(problems))
	for property, details := range problems {
		for _, detail := range details {
			out = append(out, ErrorResponse{Property: property, Detail: detail})
		}
	}
	return out
}
