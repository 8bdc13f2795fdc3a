package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

// StatusCoder lets a response model override the default 200, e.g. the
// creation endpoints answering 201.
type StatusCoder interface {
	StatusCode() int
}

func statusOf(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(gctx *gin.Context, ctx context.Context, err error) {
	var errx errorx.Error
	if !errors.As(err, &errx) {
		xcontext.Logger(ctx).Errorf("unclassified error reached the router: %v", err)
		errx = errorx.Unknown
	}

	gctx.JSON(statusOf(errx.Code), gin.H{"error": errx.Message})
}
