package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindReference:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error. Business errors keep their code and
// message; anything else is logged and hidden behind a generic 500.
func Respond(c *gin.Context, log *slog.Logger, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, StatusFor(be.Kind), be.Code, be.Message)
		return
	}
	if log != nil {
		log.Error("request failed",
			slog.Any("err", err),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
		)
	}
	Internal(c, "internal_error", "Erro interno do servidor.")
}
