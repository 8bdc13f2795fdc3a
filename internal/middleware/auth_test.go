package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/router"
	"github.com/Pratyush-Px/Gatherly/pkg/testutil"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	ctx := testutil.MockContext()
	authenticate := Authenticate()

	token, err := xcontext.TokenEngine(ctx).Generate(
		time.Minute, model.AccessToken{ID: "user1", Username: "ann"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	newCtx, err := authenticate(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(newCtx))
}

func TestAuthenticate_missingToken(t *testing.T) {
	ctx := testutil.MockContext()
	authenticate := Authenticate()

	req := httptest.NewRequest("GET", "/api/notifications", nil)
	_, err := authenticate(xcontext.WithHTTPRequest(ctx, req))
	require.Equal(t, errorx.New(errorx.Unauthenticated, "You need to authenticate before"), err)
}

// An auth failure must not lose the request context on its way to the
// closers: the logging closer still runs against a live context.
func TestAuthenticate_failureKeepsContextForClosers(t *testing.T) {
	ctx := testutil.MockContext()
	r := router.New(xcontext.Configs(ctx), xcontext.Logger(ctx), xcontext.DB(ctx))
	r.AddCloser(Logger())

	var closerCtx context.Context
	closerRan := false
	r.AddCloser(func(cctx context.Context, err error) {
		closerRan = true
		closerCtx = cctx
	})

	authed := r.Branch()
	authed.Before(Authenticate())
	router.GET(authed, "/notifications",
		func(ctx context.Context, req *struct{}) (*struct{}, error) {
			return &struct{}{}, nil
		})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/notifications", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error": "You need to authenticate before"}`, w.Body.String())
	require.True(t, closerRan)
	require.NotNil(t, closerCtx)
	require.NotNil(t, xcontext.HTTPRequest(closerCtx))

	// Same for a malformed token.
	closerRan = false
	invalidReq := httptest.NewRequest("GET", "/notifications", nil)
	invalidReq.Header.Set("Authorization", "Bearer not-a-token")

	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, invalidReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.True(t, closerRan)
	require.NotNil(t, closerCtx)
}

func TestAuthenticate_invalidToken(t *testing.T) {
	ctx := testutil.MockContext()
	authenticate := Authenticate()

	req := httptest.NewRequest("GET", "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	_, err := authenticate(xcontext.WithHTTPRequest(ctx, req))
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid or expired token"), err)
}
