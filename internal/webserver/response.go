package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform success payload
type Envelope struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
}

// ErrorEnvelope is the uniform failure payload. Detail carries optional
// machine-readable context such as {"retryable": true}.
type ErrorEnvelope struct {
	Code    int         `json:"code"`
	ErrCode string      `json:"errCode"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

// PagedEnvelope wraps list responses
type PagedEnvelope struct {
	Code     int         `json:"code"`
	Data     interface{} `json:"data"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// OK writes a success envelope
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Code: http.StatusOK, Data: data})
}

// Fail writes an error envelope with the given status
func Fail(c echo.Context, status int, errCode, message string, detail interface{}) error {
	return c.JSON(status, ErrorEnvelope{
		Code:    status,
		ErrCode: errCode,
		Message: message,
		Detail:  detail,
	})
}

// Paged writes a list envelope
func Paged(c echo.Context, data interface{}, total, page, pageSize int) error {
	return c.JSON(http.StatusOK, PagedEnvelope{
		Code:     http.StatusOK,
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
