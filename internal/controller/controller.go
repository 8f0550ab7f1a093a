package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/service"
	"github.com/rs/zerolog/log"
)

// ParseIDParam reads a numeric path parameter. On failure it writes a 400 and
// returns false.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// ParseOptionalUserID reads the user_id query parameter, which may be absent.
func ParseOptionalUserID(ctx *gin.Context) (*uint, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		return nil, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
		return nil, false
	}
	userID := uint(val)
	return &userID, true
}

// BindError writes a 400 for a request body that failed to bind or validate.
func BindError(ctx *gin.Context, err error) {
	var details []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details = append(details, fe.Namespace()+": failed on '"+fe.Tag()+"'")
		}
	} else {
		details = []string{err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: details})
}

// RespondError maps service errors to HTTP status codes.
func RespondError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	var details []string

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		details = verr.Problems
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrAttemptFinalized), errors.Is(err, service.ErrTestPublished):
		status = http.StatusConflict
	case errors.Is(err, service.ErrAIUnavailable), errors.Is(err, grading.ErrResultNotSaved):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(message)
	} else {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg(message)
	}
	if details == nil {
		details = []string{err.Error()}
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: details})
}
