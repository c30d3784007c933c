package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hireloop/interview-api/pkg/errors"
)

// Envelope is the common API response wrapper.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorBody carries error details in the envelope.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Meta carries pagination info.
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// OK writes a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Accepted writes a 202 response with data.
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, Envelope{Success: true, Data: data})
}

// NoContent writes a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated writes a 200 response with data and pagination meta.
func Paginated(c *gin.Context, data interface{}, page, perPage int, total int64) {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// Error writes an error response derived from the given error.
func Error(c *gin.Context, err error) {
	e := apperrors.FromError(err)
	c.JSON(e.Status, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: e.Code, Message: e.Message},
	})
}

// ValidationError writes a 400 response with field details.
func ValidationError(c *gin.Context, details interface{}) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    apperrors.ErrValidation.Code,
			Message: apperrors.ErrValidation.Message,
			Details: details,
		},
	})
}
