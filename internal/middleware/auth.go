package middleware

import (
	"context"
	"strings"

	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/router"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
)

func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		authorization := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
		token, ok := strings.CutPrefix(authorization, "Bearer ")
		if !ok || token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		var accessToken model.AccessToken
		if err := xcontext.TokenEngine(ctx).Verify(token, &accessToken); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid or expired token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}
