package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	error `json:"-"`

	StatusCode int    `json:"-"`
	ErrorMsg   string `json:"error"`
}

// RenderErr writes an error response. Internal errors are logged with their
// full cause chain but never leaked to the client.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode == http.StatusInternalServerError {
		zap.L().Error("internal server error",
			zap.String("path", ctx.FullPath()),
			zap.Error(err.error),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		error:      err,
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   err.Error(),
	}
}

func ErrNotFound(entity, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorMsg:   fmt.Sprintf("%v not found by %v (%v)", entity, key, value),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		error:      err,
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   "internal server error",
	}
}
