// Package dto defines the HTTP layer transfer objects and the uniform
// response envelope.
package dto

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform success envelope.
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Success writes a 200 envelope.
func Success[T any](c *gin.Context, data T) {
	c.JSON(200, Response[T]{Code: 200, Message: "success", Data: data})
}

// Created writes a 201 envelope.
func Created[T any](c *gin.Context, data T) {
	c.JSON(201, Response[T]{Code: 201, Message: "created", Data: data})
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, ErrorResponse{Code: httpCode, Message: message})
}

// BadRequest writes a 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// NotFound writes a 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// InternalError writes a 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}
