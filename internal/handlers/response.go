package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
	"github.com/magickal-mortalz/coven-service/internal/utils"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

// ErrorResponse is the uniform failure envelope. Success responses carry
// `"success": true` plus the payload; no error ever crosses this boundary
// as anything but a message and a flag.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h BaseHandler) LogRequest(c *gin.Context, msg string) {
	utils.LoggerFromContext(c.Request.Context(), h.logger).
		Debug(msg, "path", c.Request.URL.Path)
}

func (h BaseHandler) LogError(c *gin.Context, err error, msg string) {
	utils.LoggerFromContext(c.Request.Context(), h.logger).
		Error(msg, "path", c.Request.URL.Path, "error", err)
}

// OK writes a success envelope merging the payload into the response body.
func (h BaseHandler) OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes a failure envelope.
func (h BaseHandler) Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// HandleServiceError converts service-layer errors into HTTP failures.
func (h BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		h.Fail(c, http.StatusBadRequest, validationErrs.Error())
	case errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrProgressNotFound),
		errors.Is(err, services.ErrEntryNotFound):
		h.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyAtMaxDegree):
		h.Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrUnknownYear):
		h.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, tabular.ErrUnavailable):
		h.LogError(c, err, "record store unavailable")
		h.Fail(c, http.StatusServiceUnavailable, "record store unavailable")
	default:
		h.LogError(c, err, "unhandled service error")
		h.Fail(c, http.StatusInternalServerError, err.Error())
	}
}
