// Package handler implements the HTTP request handlers.
package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/deepgloss/internal/adapter/http/dto"
	"github.com/eslsoft/deepgloss/internal/entity"
)

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrDomainNotFound),
		errors.Is(err, entity.ErrTermNotFound),
		errors.Is(err, entity.ErrSentenceNotFound):
		dto.NotFound(c, err.Error())
	case errors.Is(err, entity.ErrInvalidDomainName),
		errors.Is(err, entity.ErrInvalidTermWord),
		errors.Is(err, entity.ErrInvalidTermID),
		errors.Is(err, entity.ErrInvalidSentenceContent),
		errors.Is(err, entity.ErrInvalidCandidate):
		dto.BadRequest(c, err.Error())
	default:
		dto.InternalError(c, err.Error())
	}
}

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		dto.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
