package main

import (
	"fmt"
	"net/http"

	"github.com/Pratyush-Px/Gatherly/internal/middleware"
	"github.com/Pratyush-Px/Gatherly/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadStorage()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.configs.ApiServer.Host, s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	s.logger.Infof("Server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(*s.configs, s.logger, s.db)
	s.router.AddCloser(middleware.Logger())

	api := s.router.Group("/api")

	// Auth API
	router.POST(api, "/auth/register", s.authDomain.Register)
	router.POST(api, "/auth/login", s.authDomain.Login)

	// These following APIs need authentication with an access token.
	authRouter := api.Branch()
	authRouter.Before(middleware.Authenticate())
	{
		// Post API
		router.POST(authRouter, "/posts/create", s.postDomain.Create)
		router.POST(authRouter, "/posts/:id/like", s.postDomain.ToggleLike)
		router.PUT(authRouter, "/posts/:id", s.postDomain.Update)
		router.DELETE(authRouter, "/posts/:id", s.postDomain.Delete)

		// Comment API
		router.POST(authRouter, "/comments/posts/:postId", s.commentDomain.Add)
		router.DELETE(authRouter, "/comments/:id", s.commentDomain.Delete)

		// Follow API
		router.POST(authRouter, "/follows/follow/:userId", s.followDomain.Follow)
		router.DELETE(authRouter, "/follows/unfollow/:userId", s.followDomain.Unfollow)

		// User API
		router.GET(authRouter, "/users/profile/:username", s.userDomain.GetProfile)

		// Notification API
		router.GET(authRouter, "/notifications", s.notificationDomain.GetList)

		// Image API
		router.POST(authRouter, "/files/upload", s.fileDomain.UploadImage)
	}

	// Public API.
	router.GET(api, "/posts/feed", s.postDomain.GetFeed)
	router.GET(api, "/posts/:id", s.postDomain.Get)
	router.GET(api, "/comments/posts/:postId", s.commentDomain.GetList)
	router.GET(api, "/follows/following/:userId", s.followDomain.GetFollowing)
	router.GET(api, "/follows/followers/:userId", s.followDomain.GetFollowers)
	router.GET(api, "/users/search", s.userDomain.Search)
}
