package router

import (
	"context"
	"net/http"

	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		ctx := router.newRequestContext(gctx)

		var err error
		defer func() {
			for _, closer := range router.closers {
				closer(ctx, err)
			}
		}()

		for _, middleware := range router.befores {
			// A middleware may return a nil context with its error (or with
			// no enrichment at all); the request context must survive for
			// the closers either way.
			newCtx, middlewareErr := middleware(ctx)
			if middlewareErr != nil {
				err = middlewareErr
				writeError(gctx, ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		var req Request
		if len(gctx.Params) > 0 {
			if err = gctx.ShouldBindUri(&req); err != nil {
				err = errorx.New(errorx.BadRequest, "Cannot bind the uri parameters")
				writeError(gctx, ctx, err)
				return
			}
		}

		switch method {
		case http.MethodGet:
			err = gctx.ShouldBindQuery(&req)
		case http.MethodPost, http.MethodPut:
			// Some mutations carry no body at all (follow, like).
			if gctx.Request.ContentLength > 0 {
				err = gctx.ShouldBindJSON(&req)
			}
		}
		if err != nil {
			err = errorx.New(errorx.BadRequest, "Cannot bind the request")
			writeError(gctx, ctx, err)
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(gctx, ctx, err)
			return
		}

		status := http.StatusOK
		if coder, ok := any(resp).(StatusCoder); ok {
			status = coder.StatusCode()
		}

		gctx.JSON(status, resp)
	}
}

func (r *Router) newRequestContext(gctx *gin.Context) context.Context {
	ctx := gctx.Request.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithDB(ctx, r.db.WithContext(ctx))
	ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
	ctx = xcontext.WithHTTPRequest(ctx, gctx.Request)
	return ctx
}
