package router

import (
	"context"
	"net/http"

	"github.com/Pratyush-Px/Gatherly/config"
	"github.com/Pratyush-Px/Gatherly/pkg/authenticator"
	"github.com/Pratyush-Px/Gatherly/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// HandlerFunc is the signature of every domain operation exposed over HTTP.
// The router binds uri/query/body parameters into the request object and maps
// the returned error to a status code, so domains never see the transport.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can enrich the context (e.g. with
// the authenticated user id) or abort the request by returning an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written. err is the error the
// handler or a middleware returned, or nil.
type CloserFunc func(ctx context.Context, err error)

type Router struct {
	Inner gin.IRouter

	engine      *gin.Engine
	cfg         config.Configs
	logger      logger.Logger
	db          *gorm.DB
	tokenEngine authenticator.TokenEngine

	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(cfg config.Configs, logger logger.Logger, db *gorm.DB) *Router {
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		Inner:       engine,
		engine:      engine,
		cfg:         cfg,
		logger:      logger,
		db:          db,
		tokenEngine: authenticator.NewTokenEngine(cfg.Auth.TokenSecret),
	}
}

// Branch returns a router sharing the same routing tree but with its own
// middleware and closer chains.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Group(pattern string) *Router {
	clone := r.Branch()
	clone.Inner = r.Inner.Group(pattern)
	return clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func PUT[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.PUT(pattern, wrapHandler(r, http.MethodPut, handler))
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.DELETE(pattern, wrapHandler(r, http.MethodDelete, handler))
}

// Handler returns the http.Handler serving the whole tree. The original app
// sat behind a permissive CORS layer for the browser client, so this does too.
func (r *Router) Handler() http.Handler {
	return cors.AllowAll().Handler(r.engine)
}
